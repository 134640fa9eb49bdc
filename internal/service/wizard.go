package service

import (
	"context"
	"errors"
	"strings"

	"procurement-authoring-api/internal/common"
	"procurement-authoring-api/internal/entity"
	"procurement-authoring-api/internal/repo"
	"procurement-authoring-api/internal/repo/repo_errors"

	"github.com/google/uuid"
)

// Wizard steps: basic info, category, attributes, vendor distribution,
// timeline, review, draft preview.
const (
	stepBasicInfo    = 1
	stepCategory     = 2
	stepAttributes   = 3
	stepDistribution = 4
	stepTimeline     = 5
	stepReview       = 6
	stepDraftPreview = 7

	stepCount = 7
)

type WizardService struct {
	sessionRepo repo.Session
}

func NewWizardService(repos *repo.Repositories) *WizardService {
	return &WizardService{sessionRepo: repos.Session}
}

func (s *WizardService) CreateSession(ctx context.Context) (*entity.WizardSession, error) {
	return s.sessionRepo.CreateSession(ctx)
}

func (s *WizardService) GetSession(ctx context.Context, sessionId string) (*entity.WizardSession, error) {
	sess, err := s.sessionRepo.GetSession(ctx, sessionId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrSessionNotFound
		}

		return nil, err
	}

	return sess, nil
}

func (s *WizardService) GetState(ctx context.Context, sessionId string) (*entity.WizardStateOutputModel, error) {
	sess, err := s.GetSession(ctx, sessionId)
	if err != nil {
		return nil, err
	}

	return mapWizardState(sess), nil
}

// Next advances by one step when the current step's gate passes. Gating
// never errors: a blocked advance simply returns the unchanged state.
func (s *WizardService) Next(ctx context.Context, sessionId string) (*entity.WizardStateOutputModel, error) {
	sess, err := s.update(ctx, sessionId, func(sess *entity.WizardSession) error {
		if sess.Step < stepCount && canAdvance(sess) {
			sess.Step++
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return mapWizardState(sess), nil
}

func (s *WizardService) Previous(ctx context.Context, sessionId string) (*entity.WizardStateOutputModel, error) {
	sess, err := s.update(ctx, sessionId, func(sess *entity.WizardSession) error {
		if sess.Step > 1 {
			sess.Step--
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return mapWizardState(sess), nil
}

func (s *WizardService) SetTitle(ctx context.Context, sessionId string, title string) error {
	_, err := s.update(ctx, sessionId, func(sess *entity.WizardSession) error {
		sess.Title = title
		return nil
	})

	return err
}

// SelectCategory records the choice and clears MRV subcategory selections
// whenever the session moves off the MRV category.
func (s *WizardService) SelectCategory(ctx context.Context, sessionId string, categoryId string) error {
	_, err := s.update(ctx, sessionId, func(sess *entity.WizardSession) error {
		sess.SelectedCategoryId = categoryId
		if categoryId != common.MrvCategoryId {
			for i := range sess.Subcategories {
				sess.Subcategories[i].Selected = false
			}
		}

		return nil
	})

	return err
}

func (s *WizardService) ToggleSubcategory(ctx context.Context, sessionId string, subcategoryId string) error {
	_, err := s.update(ctx, sessionId, func(sess *entity.WizardSession) error {
		for i := range sess.Subcategories {
			if sess.Subcategories[i].Id == subcategoryId {
				sess.Subcategories[i].Selected = !sess.Subcategories[i].Selected
			}
		}

		return nil
	})

	return err
}

func (s *WizardService) ToggleAttribute(ctx context.Context, sessionId string, attributeId string) error {
	_, err := s.update(ctx, sessionId, func(sess *entity.WizardSession) error {
		for i := range sess.Attributes {
			if sess.Attributes[i].Id == attributeId {
				sess.Attributes[i].Selected = !sess.Attributes[i].Selected
			}
		}

		return nil
	})

	return err
}

func (s *WizardService) SetCustomAttributes(ctx context.Context, sessionId string, text string, additionalQuestions string) error {
	_, err := s.update(ctx, sessionId, func(sess *entity.WizardSession) error {
		sess.CustomAttributes = text
		sess.AdditionalQuestions = additionalQuestions

		return nil
	})

	return err
}

func (s *WizardService) ToggleDistribution(ctx context.Context, sessionId string, optionId string) error {
	_, err := s.update(ctx, sessionId, func(sess *entity.WizardSession) error {
		sess.Distribution = entity.ToggleDistribution(sess.Distribution, optionId)
		return nil
	})

	return err
}

func (s *WizardService) ToggleInfoOption(ctx context.Context, sessionId string, optionId string) error {
	_, err := s.update(ctx, sessionId, func(sess *entity.WizardSession) error {
		for i := range sess.InfoOptions {
			if sess.InfoOptions[i].Id == optionId {
				sess.InfoOptions[i].Selected = !sess.InfoOptions[i].Selected
			}
		}

		return nil
	})

	return err
}

func (s *WizardService) AddContact(ctx context.Context, sessionId string, name, businessName, email string) (*entity.VendorContact, error) {
	contact := entity.VendorContact{
		Id:           uuid.New(),
		Name:         name,
		BusinessName: businessName,
		Email:        email,
	}

	_, err := s.update(ctx, sessionId, func(sess *entity.WizardSession) error {
		sess.Contacts = append(sess.Contacts, contact)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &contact, nil
}

func (s *WizardService) RemoveContact(ctx context.Context, sessionId string, contactId string) error {
	uuidForm, err := uuid.Parse(contactId)
	if err != nil {
		return ErrContactNotFound
	}

	_, err = s.update(ctx, sessionId, func(sess *entity.WizardSession) error {
		for i := range sess.Contacts {
			if sess.Contacts[i].Id == uuidForm {
				sess.Contacts = append(sess.Contacts[:i], sess.Contacts[i+1:]...)
				return nil
			}
		}

		return ErrContactNotFound
	})

	return err
}

// ImportContacts parses the payload and appends the valid rows to the
// session's contact list. On any parse failure the list is left unchanged.
func (s *WizardService) ImportContacts(ctx context.Context, sessionId string, payload string) ([]entity.VendorContact, error) {
	imported, err := parseVendorContacts(payload)
	if err != nil {
		return nil, err
	}

	sess, err := s.update(ctx, sessionId, func(sess *entity.WizardSession) error {
		sess.Contacts = append(sess.Contacts, imported...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return sess.Contacts, nil
}

// EditTimeline updates the entry with the given label in place. Order is
// fixed: entries are never added, removed or reordered.
func (s *WizardService) EditTimeline(ctx context.Context, sessionId string, label string, input *entity.TimelineDate) error {
	_, err := s.update(ctx, sessionId, func(sess *entity.WizardSession) error {
		for i := range sess.Timeline {
			if !strings.EqualFold(sess.Timeline[i].Label, label) {
				continue
			}

			sess.Timeline[i].Date = input.Date
			sess.Timeline[i].Description = input.Description
			sess.Timeline[i].Enabled = input.Enabled

			return nil
		}

		return ErrTimelineEntryNotFound
	})

	return err
}

func (s *WizardService) Snapshot(ctx context.Context, sessionId string) (*entity.RfpSubmission, error) {
	sess, err := s.GetSession(ctx, sessionId)
	if err != nil {
		return nil, err
	}

	return buildSubmission(sess), nil
}

func (s *WizardService) update(ctx context.Context, sessionId string, mutate func(*entity.WizardSession) error) (*entity.WizardSession, error) {
	sess, err := s.sessionRepo.UpdateSession(ctx, sessionId, mutate)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrSessionNotFound
		}

		return nil, err
	}

	return sess, nil
}

// buildSubmission is the aggregator: each field group filtered to its active
// entries, paired with the free-text fields and the full contact list. Pure
// function of session state, safe to call mid-edit.
func buildSubmission(sess *entity.WizardSession) *entity.RfpSubmission {
	sub := &entity.RfpSubmission{
		Title:               sess.Title,
		SelectedCategoryId:  sess.SelectedCategoryId,
		CustomAttributes:    sess.CustomAttributes,
		AdditionalQuestions: sess.AdditionalQuestions,
		Subcategories:       make([]entity.MrvSubcategory, 0),
		Attributes:          make([]entity.EnvironmentalAttribute, 0),
		Distribution:        make([]entity.VendorDistributionOption, 0),
		Timeline:            make([]entity.TimelineDate, 0),
		InfoOptions:         make([]entity.RequestedInfoOption, 0),
		Contacts:            append([]entity.VendorContact(nil), sess.Contacts...),
	}

	for _, c := range sess.Categories {
		if c.Id == sess.SelectedCategoryId {
			sub.CategoryName = c.Name
		}
	}
	for _, sc := range sess.Subcategories {
		if sc.Selected {
			sub.Subcategories = append(sub.Subcategories, sc)
		}
	}
	for _, a := range sess.Attributes {
		if a.Selected {
			sub.Attributes = append(sub.Attributes, a)
		}
	}
	for _, d := range sess.Distribution {
		if d.Selected {
			sub.Distribution = append(sub.Distribution, d)
		}
	}
	for _, t := range sess.Timeline {
		if t.Enabled {
			sub.Timeline = append(sub.Timeline, t)
		}
	}
	for _, o := range sess.InfoOptions {
		if o.Selected {
			sub.InfoOptions = append(sub.InfoOptions, o)
		}
	}

	return sub
}

func canAdvance(sess *entity.WizardSession) bool {
	switch sess.Step {
	case stepBasicInfo:
		return strings.TrimSpace(sess.Title) != ""
	case stepCategory:
		return sess.SelectedCategoryId != ""
	case stepAttributes:
		for _, a := range sess.Attributes {
			if a.Selected {
				return true
			}
		}
		return false
	case stepDistribution:
		for _, d := range sess.Distribution {
			if d.Selected {
				return true
			}
		}
		return false
	default:
		return true
	}
}

func canSaveDraft(sess *entity.WizardSession) bool {
	return sess.Step >= stepCategory && sess.Step <= stepReview
}
