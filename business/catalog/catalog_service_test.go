package catalog

import (
	"context"
	"errors"
	"testing"

	"shoeScout/domain"
)

type fakeRepo struct {
	records   []domain.ShoeRecord
	market    domain.MarketContext
	catErr    error
	marketErr error
}

func (f *fakeRepo) LoadCatalog(_ context.Context) ([]domain.ShoeRecord, error) {
	return f.records, f.catErr
}

func (f *fakeRepo) LoadMarketContext(_ context.Context) (domain.MarketContext, error) {
	return f.market, f.marketErr
}

func sampleRecords() []domain.ShoeRecord {
	return []domain.ShoeRecord{
		{Brand: "Nike", Model: "Vaporfly 3", Category: []string{"race"}, PriceUSD: 260},
		{Brand: "Brooks", Model: "Ghost 16", Category: []string{"daily"}, PriceUSD: 140},
		{Brand: "Nike", Model: "Pegasus 41", Category: []string{"daily"}, PriceUSD: 140},
	}
}

func TestNewCatalogServiceFailsOnLoadError(t *testing.T) {
	_, err := NewCatalogService(context.Background(), &fakeRepo{catErr: errors.New("boom")})
	if err == nil {
		t.Fatal("expected an error")
	}
}

func TestNewCatalogServiceFailsOnEmptyCatalog(t *testing.T) {
	_, err := NewCatalogService(context.Background(), &fakeRepo{})
	if err == nil {
		t.Fatal("an empty catalog should be rejected")
	}
}

func TestNewCatalogServiceToleratesMarketError(t *testing.T) {
	svc, err := NewCatalogService(context.Background(), &fakeRepo{
		records:   sampleRecords(),
		marketErr: errors.New("sidecar gone"),
	})
	if err != nil {
		t.Fatalf("market errors must not be fatal: %v", err)
	}
	if len(svc.MarketContext()) != 0 {
		t.Errorf("expected empty market context")
	}
}

func TestBrandsSortedWithAnyFirst(t *testing.T) {
	svc, err := NewCatalogService(context.Background(), &fakeRepo{records: sampleRecords()})
	if err != nil {
		t.Fatal(err)
	}

	got := svc.Brands()

	want := []string{"Any", "Brooks", "Nike"}
	if len(got) != len(want) {
		t.Fatalf("got %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("slot %d: got %s, want %s", i, got[i], want[i])
		}
	}
}

func TestSummaryHasPriceHeadroom(t *testing.T) {
	svc, err := NewCatalogService(context.Background(), &fakeRepo{records: sampleRecords()})
	if err != nil {
		t.Fatal(err)
	}

	sum := svc.Summary()

	if sum.TotalShoes != 3 {
		t.Errorf("wrong shoe count: %d", sum.TotalShoes)
	}
	if sum.MaxPriceUSD != 310 {
		t.Errorf("expected max price 260 + 50 headroom, got %f", sum.MaxPriceUSD)
	}
}

func TestFindIsCaseInsensitive(t *testing.T) {
	svc, err := NewCatalogService(context.Background(), &fakeRepo{records: sampleRecords()})
	if err != nil {
		t.Fatal(err)
	}

	shoe, ok := svc.Find("nike", "vaporfly 3")
	if !ok {
		t.Fatal("expected a match")
	}
	if shoe.Model != "Vaporfly 3" {
		t.Errorf("wrong shoe: %s", shoe.Model)
	}

	if _, ok := svc.Find("Nike", "Alphafly"); ok {
		t.Error("unexpected match")
	}
}
