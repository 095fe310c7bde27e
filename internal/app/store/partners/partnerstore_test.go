package partnerstore_test

import (
	"testing"

	partnerstore "github.com/causewayhq/causeway/internal/app/store/partners"
	"github.com/causewayhq/causeway/internal/app/system/paging"
	"github.com/causewayhq/causeway/internal/domain/models"
	"github.com/causewayhq/causeway/internal/testutil"
)

func TestStore_Create_Defaults(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := partnerstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.Partner{
		Name:     "Acme Foundation",
		Category: models.PartnerCatCorporate,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.PartnershipLevel != models.PartnerSupporter {
		t.Errorf("default level = %q, want supporter", created.PartnershipLevel)
	}
	if created.NameCI != "acme foundation" {
		t.Errorf("NameCI = %q, want folded %q", created.NameCI, "acme foundation")
	}
}

func TestStore_SetLogoURL_ReturnsPrevious(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := partnerstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx := testutil.NewFixtures(t, db)
	p := fx.CreatePartner(ctx, "Globex", models.PartnerGold, models.PartnerCatCorporate)

	prev, err := store.SetLogoURL(ctx, p.ID, "/uploads/logos/v1.png")
	if err != nil {
		t.Fatalf("SetLogoURL failed: %v", err)
	}
	if prev != "" {
		t.Errorf("first previous = %q, want empty", prev)
	}

	prev, err = store.SetLogoURL(ctx, p.ID, "/uploads/logos/v2.png")
	if err != nil {
		t.Fatalf("SetLogoURL failed: %v", err)
	}
	if prev != "/uploads/logos/v1.png" {
		t.Errorf("previous = %q, want v1", prev)
	}

	got, err := store.GetByID(ctx, p.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.LogoURL != "/uploads/logos/v2.png" {
		t.Errorf("stored logo = %q", got.LogoURL)
	}
}

func TestStore_List_FilterByLevel(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := partnerstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx := testutil.NewFixtures(t, db)
	fx.CreatePartner(ctx, "Alpha", models.PartnerPlatinum, models.PartnerCatCorporate)
	fx.CreatePartner(ctx, "Beta", models.PartnerGold, models.PartnerCatNGO)
	fx.CreatePartner(ctx, "Gamma", models.PartnerGold, models.PartnerCatAcademic)

	partners, total, err := store.List(ctx, partnerstore.Filter{
		Level:  models.PartnerGold,
		Paging: paging.Params{Page: 1, Limit: 10},
	})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if total != 2 {
		t.Errorf("total = %d, want 2", total)
	}
	// Sorted by folded name.
	if len(partners) == 2 && partners[0].Name != "Beta" {
		t.Errorf("first = %q, want Beta", partners[0].Name)
	}
}

func TestStore_Stats(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := partnerstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx := testutil.NewFixtures(t, db)
	fx.CreatePartner(ctx, "A", models.PartnerPlatinum, models.PartnerCatCorporate)
	fx.CreatePartner(ctx, "B", models.PartnerGold, models.PartnerCatCorporate)
	fx.CreatePartner(ctx, "C", models.PartnerGold, models.PartnerCatMedia)

	st, err := store.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if st.Total != 3 {
		t.Errorf("Total = %d, want 3", st.Total)
	}
	if st.ByLevel[models.PartnerGold] != 2 {
		t.Errorf("ByLevel[gold] = %d, want 2", st.ByLevel[models.PartnerGold])
	}
	if st.ByCategory[models.PartnerCatCorporate] != 2 {
		t.Errorf("ByCategory[corporate] = %d, want 2", st.ByCategory[models.PartnerCatCorporate])
	}
}
