package programstore_test

import (
	"testing"

	programstore "github.com/causewayhq/causeway/internal/app/store/programs"
	"github.com/causewayhq/causeway/internal/app/system/paging"
	"github.com/causewayhq/causeway/internal/domain/models"
	"github.com/causewayhq/causeway/internal/testutil"
)

func TestStore_CreateAndList(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := programstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.Program{
		Title:    "AI Literacy Workshops",
		Category: models.ProgramCatTraining,
		Features: []string{"weekly sessions", "open materials"},
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.Status != models.ProgramUpcoming {
		t.Errorf("default status = %q, want upcoming", created.Status)
	}

	fx := testutil.NewFixtures(t, db)
	fx.CreateProgram(ctx, "Community Outreach", models.ProgramCatOutreach, models.ProgramOngoing)

	programs, total, err := store.List(ctx, programstore.Filter{
		Category: models.ProgramCatTraining,
		Paging:   paging.Params{Page: 1, Limit: 10},
	})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if total != 1 || len(programs) != 1 {
		t.Fatalf("total = %d, len = %d, want 1/1", total, len(programs))
	}
	if programs[0].Title != "AI Literacy Workshops" {
		t.Errorf("got %q", programs[0].Title)
	}
}

func TestStore_Stats(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := programstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	seed := []models.Program{
		{Title: "A", Category: models.ProgramCatTraining, Status: models.ProgramOngoing, Beneficiaries: 40},
		{Title: "B", Category: models.ProgramCatTraining, Status: models.ProgramFinished, Beneficiaries: 60},
		{Title: "C", Category: models.ProgramCatResearch, Status: models.ProgramOngoing},
	}
	for _, p := range seed {
		if _, err := store.Create(ctx, p); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	st, err := store.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if st.Total != 3 {
		t.Errorf("Total = %d, want 3", st.Total)
	}
	if st.ByStatus[models.ProgramOngoing] != 2 {
		t.Errorf("ByStatus[ongoing] = %d, want 2", st.ByStatus[models.ProgramOngoing])
	}
	if st.Beneficiaries != 100 {
		t.Errorf("Beneficiaries = %d, want 100", st.Beneficiaries)
	}
}
