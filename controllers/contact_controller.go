package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"online-shop/models"
	"online-shop/services"
)

type ContactController struct {
	contacts *services.ContactService
}

func NewContactController(contacts *services.ContactService) *ContactController {
	return &ContactController{contacts: contacts}
}

// SubmitContact godoc
// @Summary Submit contact message
// @Description Store a contact message (max 300 characters)
// @Tags Contact
// @Accept json
// @Produce json
// @Param request body models.ContactRequest true "Message"
// @Success 201 {object} models.Contact
// @Failure 400 {object} models.ErrorResponse
// @Router /contacts [post]
func (ctrl *ContactController) SubmitContact(c *gin.Context) {
	var req models.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	contact, err := ctrl.contacts.SubmitContact(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contact)
}

// GetAllContacts godoc
// @Summary List contact messages
// @Tags Admin - Contact
// @Security BearerAuth
// @Produce json
// @Param email query string false "Filter by sender email"
// @Success 200 {object} models.Response
// @Router /admin/contacts [get]
func (ctrl *ContactController) GetAllContacts(c *gin.Context) {
	var (
		contacts []models.Contact
		err      error
	)

	if email := c.Query("email"); email != "" {
		contacts, err = ctrl.contacts.GetContactsByEmail(c.Request.Context(), email)
	} else {
		contacts, err = ctrl.contacts.GetAllContacts(c.Request.Context())
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Contacts retrieved", Data: contacts})
}
