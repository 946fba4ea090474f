package controllers

import (
	"github.com/gin-gonic/gin"

	"wanderlust/internal/models/request_models"
	"wanderlust/internal/services"
	"wanderlust/pkg/utils"
)

type InquiriesController struct {
	inquiryService services.InquiryServiceInterface
}

func NewInquiriesController(inquiryService services.InquiryServiceInterface) *InquiriesController {
	return &InquiriesController{inquiryService: inquiryService}
}

func (i *InquiriesController) CreateInquiry(c *gin.Context) {
	var req request_models.CreateInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondInvalid(c, err)
		return
	}

	inquiry, err := i.inquiryService.CreateInquiry(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, inquiry, "Inquiry submitted successfully")
}

func (i *InquiriesController) ListInquiries(c *gin.Context) {
	inquiries, err := i.inquiryService.ListInquiries(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, inquiries, "Inquiries fetched successfully")
}

// CreateContactMessage acknowledges with the stored id only; the message body
// is not echoed back.
func (i *InquiriesController) CreateContactMessage(c *gin.Context) {
	var req request_models.ContactMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondInvalid(c, err)
		return
	}

	id, err := i.inquiryService.CreateContactMessage(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, gin.H{"id": id}, "Message sent successfully")
}
