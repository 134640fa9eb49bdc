package service

import (
	"procurement-authoring-api/internal/entity"
)

func mapRfp(item *entity.RfpItem) *entity.RfpOutputModel {
	return &entity.RfpOutputModel{
		Id:           item.Id.String(),
		Title:        item.Title,
		Description:  item.Description,
		Status:       item.Status,
		DueDate:      item.DueDate,
		Responses:    item.Responses,
		CreatedAt:    item.CreatedAt,
		LastEdited:   item.LastEdited,
		Completeness: item.Completeness,
		RfpText:      item.RfpText,
	}
}

func mapRfps(items []entity.RfpItem) []entity.RfpOutputModel {
	s := make([]entity.RfpOutputModel, 0)
	for _, item := range items {
		s = append(s, *mapRfp(&item))
	}

	return s
}

func mapRfiResponse(r *entity.RfiResponse) *entity.RfiResponseOutputModel {
	return &entity.RfiResponseOutputModel{
		Id:           r.Id.String(),
		VendorName:   r.VendorName,
		Email:        r.Email,
		ContactEmail: r.ContactEmail,
		Subject:      r.Subject,
		ReceivedDate: r.ReceivedDate,
		Status:       r.Status,
		Category:     r.Category,
		CompanyId:    r.CompanyId,
		LlmScore:     r.LlmScore,
		UserScore:    r.UserScore,
	}
}

func mapRfiResponses(responses []entity.RfiResponse) []entity.RfiResponseOutputModel {
	s := make([]entity.RfiResponseOutputModel, 0)
	for _, r := range responses {
		s = append(s, *mapRfiResponse(&r))
	}

	return s
}

func mapWizardState(sess *entity.WizardSession) *entity.WizardStateOutputModel {
	return &entity.WizardStateOutputModel{
		SessionId:    sess.Id.String(),
		CurrentStep:  sess.Step,
		CanAdvance:   sess.Step < stepCount && canAdvance(sess),
		CanRetreat:   sess.Step > 1,
		CanSaveDraft: canSaveDraft(sess),
		DraftText:    sess.DraftText,
	}
}
