package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"procurement-authoring-api/internal/common"
	"procurement-authoring-api/internal/entity"
	"procurement-authoring-api/internal/repo"
	"procurement-authoring-api/internal/repo/repo_errors"
)

const categoryPlaceholder = "[Product Category]"

type DraftService struct {
	sessionRepo repo.Session
	profileRepo repo.Profile
	policyRepo  repo.Policy
}

func NewDraftService(repos *repo.Repositories) *DraftService {
	return &DraftService{
		sessionRepo: repos.Session,
		profileRepo: repos.Profile,
		policyRepo:  repos.Policy,
	}
}

// GenerateRfp renders the RFP document for the session and stores it as the
// session's draft text. Requests for the same session are serialized: a
// second call while one is in flight fails with ErrGenerationInFlight. On
// any failure the previously generated text is left untouched.
func (s *DraftService) GenerateRfp(ctx context.Context, sessionId string) (string, error) {
	return s.generate(ctx, sessionId, func(sub *entity.RfpSubmission, profile *entity.BusinessProfile) (string, error) {
		policy, err := s.policyRepo.Get(ctx, sub.CategoryName)
		if err != nil {
			return "", err
		}

		return ComposeRfp(sub, profile, policy), nil
	})
}

// GenerateRfi renders the lighter RFI variant. No policy lookup is involved.
func (s *DraftService) GenerateRfi(ctx context.Context, sessionId string) (string, error) {
	return s.generate(ctx, sessionId, func(sub *entity.RfpSubmission, profile *entity.BusinessProfile) (string, error) {
		return ComposeRfi(sub, profile), nil
	})
}

func (s *DraftService) generate(ctx context.Context, sessionId string, compose func(*entity.RfpSubmission, *entity.BusinessProfile) (string, error)) (string, error) {
	sess, err := s.sessionRepo.UpdateSession(ctx, sessionId, func(sess *entity.WizardSession) error {
		if sess.Generating {
			return ErrGenerationInFlight
		}
		sess.Generating = true

		return nil
	})
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return "", ErrSessionNotFound
		}

		return "", err
	}

	text, composeErr := func() (string, error) {
		sub := buildSubmission(sess)
		profile, err := s.profileRepo.Get(ctx)
		if err != nil {
			return "", err
		}

		return compose(sub, profile)
	}()

	_, err = s.sessionRepo.UpdateSession(ctx, sessionId, func(sess *entity.WizardSession) error {
		sess.Generating = false
		if composeErr == nil {
			sess.DraftText = text
		}

		return nil
	})
	if composeErr != nil {
		return "", fmt.Errorf("%w: %s", ErrDraftGeneration, composeErr)
	}
	if err != nil {
		return "", err
	}

	return text, nil
}

// ComposeRfp deterministically renders the RFP document. Every optional
// input (attributes, custom text, timeline, policy) is omitted gracefully.
func ComposeRfp(sub *entity.RfpSubmission, profile *entity.BusinessProfile, policy string) string {
	category := sub.CategoryName
	if category == "" {
		category = categoryPlaceholder
	}
	hasPolicy := strings.TrimSpace(policy) != ""

	var b strings.Builder
	fmt.Fprintf(&b, "# Request for Proposal: %s\n\n", sub.Title)

	b.WriteString("## Introduction\n\n")
	fmt.Fprintf(&b, "%s, operating in the %s industry, invites qualified vendors to submit proposals for %s.\n\n",
		profile.CompanyName, profile.Industry, category)
	fmt.Fprintf(&b, "Our mission: %s\n\n", profile.Mission)
	fmt.Fprintf(&b, "This procurement supports our sustainability goals: %s\n\n", profile.SustainabilityGoals)

	b.WriteString("## Objectives\n\n")
	fmt.Fprintf(&b, "The objective of this RFP is to identify and select a vendor capable of supplying %s that meets the environmental and commercial requirements described below.\n\n", category)

	b.WriteString("## Scope of Work\n\n")
	if len(sub.Attributes) > 0 {
		fmt.Fprintf(&b, "The selected vendor will supply %s with the following environmental attributes: %s.\n\n",
			category, joinNames(attributeNames(sub.Attributes)))
	}
	if len(sub.Subcategories) > 0 {
		fmt.Fprintf(&b, "The engagement covers the following measurement, reporting and verification services: %s.\n\n",
			joinNames(subcategoryNames(sub.Subcategories)))
	}
	if strings.TrimSpace(sub.CustomAttributes) != "" {
		fmt.Fprintf(&b, "Additional requirements: %s\n\n", sub.CustomAttributes)
	}
	b.WriteString("All deliverables must be provided in an auditable digital format with supporting documentation.\n\n")

	b.WriteString("## Submission Requirements\n\n")
	b.WriteString("Proposals must include:\n\n")
	b.WriteString("- Company overview and relevant experience\n")
	b.WriteString("- Detailed product specifications\n")
	b.WriteString("- Pricing structure and terms\n")
	b.WriteString("- Delivery capabilities and lead times\n")
	if hasPolicy {
		b.WriteString("- Documentation of compliance with the product policy below\n")
	}
	b.WriteString("\n")

	b.WriteString("## Evaluation Criteria\n\n")
	b.WriteString("Proposals will be evaluated on:\n\n")
	b.WriteString("- Technical compliance with the requested attributes\n")
	b.WriteString("- Total cost of ownership\n")
	b.WriteString("- Vendor qualifications and references\n")
	b.WriteString("- Sustainability performance\n")
	if hasPolicy {
		b.WriteString("- Alignment with the product policy below\n")
	}
	b.WriteString("\n")

	if timeline := composeTimeline(sub.Timeline); timeline != "" {
		b.WriteString(timeline)
	}

	b.WriteString("## Contact Information\n\n")
	b.WriteString("Primary contact: [Contact Name]\n")
	b.WriteString("Email: [Contact Email]\n")
	b.WriteString("Phone: [Contact Phone]\n")

	if hasPolicy {
		b.WriteString("\n## Policy Compliance\n\n")
		b.WriteString(policy)
		b.WriteString("\n")
	}

	return b.String()
}

// ComposeRfi renders the shorter RFI variant.
func ComposeRfi(sub *entity.RfpSubmission, profile *entity.BusinessProfile) string {
	category := sub.CategoryName
	if category == "" {
		category = categoryPlaceholder
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Request for Information: %s\n\n", sub.Title)

	b.WriteString("## Introduction\n\n")
	fmt.Fprintf(&b, "%s, operating in the %s industry, requests information from vendors regarding %s.\n\n",
		profile.CompanyName, profile.Industry, category)
	fmt.Fprintf(&b, "Our mission: %s\n\n", profile.Mission)

	b.WriteString("## Intended Recipients\n\n")
	if len(sub.Contacts) > 0 {
		for _, c := range sub.Contacts {
			fmt.Fprintf(&b, "- %s (%s), %s\n", c.Name, c.BusinessName, c.Email)
		}
		b.WriteString("\n")
	} else {
		b.WriteString("This request is open to all qualified vendors in the community.\n\n")
	}

	b.WriteString("## Requested Information\n\n")
	if strings.TrimSpace(sub.CustomAttributes) != "" {
		fmt.Fprintf(&b, "%s\n\n", sub.CustomAttributes)
	}
	if len(sub.InfoOptions) > 0 {
		b.WriteString("Please provide the following:\n\n")
		for _, o := range sub.InfoOptions {
			fmt.Fprintf(&b, "- %s\n", o.Name)
		}
		b.WriteString("\n")
	}

	if strings.TrimSpace(sub.AdditionalQuestions) != "" {
		b.WriteString("## Additional Questions\n\n")
		fmt.Fprintf(&b, "%s\n\n", sub.AdditionalQuestions)
	}

	b.WriteString("## Deadline\n\n")
	fmt.Fprintf(&b, "Responses are requested by %s.\n\n", rfiDeadline(sub.Timeline))

	fmt.Fprintf(&b, "We appreciate your participation.\n\n%s\n", profile.CompanyName)

	return b.String()
}

// composeTimeline renders the optional Timeline section. Entries keep their
// fixed array order; an empty input yields no section at all.
func composeTimeline(timeline []entity.TimelineDate) string {
	if len(timeline) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("## Timeline\n\n")
	for _, t := range timeline {
		date := "[Date TBD]"
		if t.Date != nil {
			date = t.Date.Format(common.DueDateLayout)
		}
		fmt.Fprintf(&b, "- %s: %s\n", t.Label, date)
		if strings.TrimSpace(t.Description) != "" {
			fmt.Fprintf(&b, "  %s\n", t.Description)
		}
	}
	b.WriteString("\n")

	return b.String()
}

func rfiDeadline(timeline []entity.TimelineDate) string {
	for _, t := range timeline {
		if strings.EqualFold(t.Label, "Proposal Deadline") && t.Date != nil {
			return t.Date.Format(common.DueDateLayout)
		}
	}

	return "[Response Deadline]"
}

func joinNames(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	case 2:
		return names[0] + " and " + names[1]
	default:
		return strings.Join(names[:len(names)-1], ", ") + ", and " + names[len(names)-1]
	}
}

func attributeNames(attributes []entity.EnvironmentalAttribute) []string {
	names := make([]string, 0, len(attributes))
	for _, a := range attributes {
		names = append(names, a.Name)
	}

	return names
}

func subcategoryNames(subcategories []entity.MrvSubcategory) []string {
	names := make([]string, 0, len(subcategories))
	for _, sc := range subcategories {
		names = append(names, sc.Name)
	}

	return names
}
