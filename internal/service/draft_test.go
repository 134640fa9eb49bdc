package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"procurement-authoring-api/internal/entity"
	"procurement-authoring-api/internal/repo"
	"procurement-authoring-api/internal/repo/memdb"
)

func testProfile() *entity.BusinessProfile {
	return &entity.BusinessProfile{
		CompanyName:         "EarnDLT",
		Industry:            "energy",
		Mission:             "Bring transparency to commodity markets.",
		SustainabilityGoals: "Net-zero by 2035.",
	}
}

func testSubmission() *entity.RfpSubmission {
	date := time.Date(2026, time.September, 30, 0, 0, 0, 0, time.UTC)

	return &entity.RfpSubmission{
		Title:        "RNG Supply 2027",
		CategoryName: "Renewable Natural Gas",
		Attributes: []entity.EnvironmentalAttribute{
			{Id: "low-carbon", Name: "Low Carbon Intensity", Selected: true},
			{Id: "certified-origin", Name: "Certified Origin", Selected: true},
		},
		CustomAttributes: "Delivery to the Gulf Coast hub.",
		Timeline: []entity.TimelineDate{
			{Label: "Release", Date: &date, Description: "RFP released", Enabled: true},
			{Label: "Proposal Deadline", Date: &date, Enabled: true},
		},
	}
}

func TestComposeRfp_Deterministic(t *testing.T) {
	sub, profile := testSubmission(), testProfile()
	policy := "Vendors must retain audit records."

	first := ComposeRfp(sub, profile, policy)
	second := ComposeRfp(sub, profile, policy)
	if first != second {
		t.Error("expected identical output for identical inputs")
	}
}

func TestComposeRfp_SectionOrder(t *testing.T) {
	text := ComposeRfp(testSubmission(), testProfile(), "policy text")

	sections := []string{
		"## Introduction",
		"## Objectives",
		"## Scope of Work",
		"## Submission Requirements",
		"## Evaluation Criteria",
		"## Timeline",
		"## Contact Information",
		"## Policy Compliance",
	}
	last := -1
	for _, section := range sections {
		idx := strings.Index(text, section)
		if idx == -1 {
			t.Fatalf("missing section %q", section)
		}
		if idx < last {
			t.Errorf("section %q out of order", section)
		}
		last = idx
	}
}

func TestComposeRfp_NoTimelineOmitsSection(t *testing.T) {
	sub := testSubmission()
	sub.Timeline = nil

	text := ComposeRfp(sub, testProfile(), "")
	if strings.Contains(text, "## Timeline") {
		t.Error("expected no Timeline section with zero enabled entries")
	}
}

func TestComposeRfp_TimelineKeepsArrayOrder(t *testing.T) {
	text := ComposeRfp(testSubmission(), testProfile(), "")

	release := strings.Index(text, "- Release:")
	deadline := strings.Index(text, "- Proposal Deadline:")
	if release == -1 || deadline == -1 {
		t.Fatal("expected both timeline entries rendered")
	}
	if release > deadline {
		t.Error("expected timeline entries in original array order")
	}
	if !strings.Contains(text, "- Release: Sep 30, 2026") {
		t.Error("expected locale-style date formatting")
	}
}

func TestComposeRfp_PolicySections(t *testing.T) {
	withPolicy := ComposeRfp(testSubmission(), testProfile(), "Audit records required.")
	withoutPolicy := ComposeRfp(testSubmission(), testProfile(), "")

	if !strings.Contains(withPolicy, "## Policy Compliance") {
		t.Error("expected Policy Compliance section with non-empty policy")
	}
	if !strings.Contains(withPolicy, "Audit records required.") {
		t.Error("expected policy text appended verbatim")
	}
	if !strings.Contains(withPolicy, "- Documentation of compliance with the product policy below") {
		t.Error("expected extra submission requirement bullet")
	}
	if !strings.Contains(withPolicy, "- Alignment with the product policy below") {
		t.Error("expected extra evaluation criteria bullet")
	}

	if strings.Contains(withoutPolicy, "## Policy Compliance") {
		t.Error("expected no Policy Compliance section with empty policy")
	}
	if strings.Contains(withoutPolicy, "product policy below") {
		t.Error("expected no extra checklist bullets with empty policy")
	}
}

func TestComposeRfp_MissingCategoryUsesPlaceholder(t *testing.T) {
	sub := testSubmission()
	sub.CategoryName = ""

	text := ComposeRfp(sub, testProfile(), "")
	if !strings.Contains(text, "[Product Category]") {
		t.Error("expected category placeholder when no category selected")
	}
}

func TestComposeRfi_Shape(t *testing.T) {
	sub := testSubmission()
	sub.Contacts = []entity.VendorContact{
		{Name: "Jane Doe", BusinessName: "Acme", Email: "jane@acme.com"},
	}
	sub.InfoOptions = []entity.RequestedInfoOption{
		{Id: "pricing-structure", Name: "Pricing Structure", Selected: true},
	}
	sub.AdditionalQuestions = "What is your lead time?"

	text := ComposeRfi(sub, testProfile())
	for _, want := range []string{
		"# Request for Information: RNG Supply 2027",
		"## Intended Recipients",
		"- Jane Doe (Acme), jane@acme.com",
		"## Requested Information",
		"- Pricing Structure",
		"## Additional Questions",
		"## Deadline",
		"Sep 30, 2026",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("missing %q in rfi document", want)
		}
	}
	if strings.Contains(text, "## Policy Compliance") {
		t.Error("rfi variant must not include a policy section")
	}
}

func TestPolicyLookup_FuzzyMatch(t *testing.T) {
	catalog, err := memdb.NewCatalog()
	if err != nil {
		t.Fatal(err)
	}
	policyRepo := memdb.NewPolicyRepo(catalog)

	// Exact name, substring both directions, and a miss.
	cases := []struct {
		category string
		wantHit  bool
	}{
		{"Renewable Natural Gas", true},
		{"renewable natural gas", true},
		{"Sustainable Packaging", true}, // category contains policy name "Packaging"
		{"Office Furniture", false},
		{"", false},
	}
	for _, tc := range cases {
		text, err := policyRepo.Get(context.Background(), tc.category)
		if err != nil {
			t.Fatalf("category %q: unexpected error %v", tc.category, err)
		}
		if tc.wantHit && text == "" {
			t.Errorf("category %q: expected a policy hit", tc.category)
		}
		if !tc.wantHit && text != "" {
			t.Errorf("category %q: expected empty policy, got %q", tc.category, text)
		}
	}
}

type failingProfileRepo struct{}

func (failingProfileRepo) Get(ctx context.Context) (*entity.BusinessProfile, error) {
	return nil, errors.New("profile source unavailable")
}

func TestGenerateRfp_FailurePreservesPreviousDraft(t *testing.T) {
	catalog, err := memdb.NewCatalog()
	if err != nil {
		t.Fatal(err)
	}
	sessionRepo := memdb.NewSessionRepo(catalog)
	repos := &repo.Repositories{
		Session: sessionRepo,
		Profile: memdb.NewProfileRepo(catalog),
		Policy:  memdb.NewPolicyRepo(catalog),
	}

	wizard := NewWizardService(repos)
	drafts := NewDraftService(repos)

	ctx := context.Background()
	sess, err := wizard.CreateSession(ctx)
	if err != nil {
		t.Fatal(err)
	}
	id := sess.Id.String()
	if err := wizard.SetTitle(ctx, id, "First Draft"); err != nil {
		t.Fatal(err)
	}

	first, err := drafts.GenerateRfp(ctx, id)
	if err != nil {
		t.Fatalf("expected generation to succeed, got %v", err)
	}
	if first == "" {
		t.Fatal("expected non-empty draft text")
	}

	broken := NewDraftService(&repo.Repositories{
		Session: sessionRepo,
		Profile: failingProfileRepo{},
		Policy:  memdb.NewPolicyRepo(catalog),
	})
	_, err = broken.GenerateRfp(ctx, id)
	if !errors.Is(err, ErrDraftGeneration) {
		t.Fatalf("expected ErrDraftGeneration, got %v", err)
	}

	after, err := wizard.GetSession(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	if after.DraftText != first {
		t.Error("expected previous draft text preserved after a failed generation")
	}
	if after.Generating {
		t.Error("expected in-flight flag cleared after failure")
	}
}
