package importer

import (
	"context"
	"fmt"

	"github.com/weeztools/weezimport/internal/domain"
	"github.com/weeztools/weezimport/internal/registry"
	"github.com/weeztools/weezimport/internal/weezevent"
)

const (
	// DefaultChannelID is the distribution channel every imported rate is
	// created under.
	DefaultChannelID = 2179
	// DefaultTierLabel is the tier used for rows without a tarif column.
	DefaultTierLabel = "WEEZ XLSX IMPORT"
)

// MapperConfig holds row-mapping settings.
type MapperConfig struct {
	EventID string
	// ChannelID defaults to DefaultChannelID.
	ChannelID int
	// FallbackTier defaults to DefaultTierLabel.
	FallbackTier string
}

// Mapper assembles one submission record per row, resolving the row's tier
// through the rate registry and its extra columns through the form registry.
type Mapper struct {
	rates        *registry.RateRegistry
	forms        *registry.FormRegistry
	eventID      string
	channelID    int
	fallbackTier string
}

// NewMapper creates a Mapper.
func NewMapper(rates *registry.RateRegistry, forms *registry.FormRegistry, cfg *MapperConfig) *Mapper {
	channelID := cfg.ChannelID
	if channelID == 0 {
		channelID = DefaultChannelID
	}
	fallbackTier := cfg.FallbackTier
	if fallbackTier == "" {
		fallbackTier = DefaultTierLabel
	}
	return &Mapper{
		rates:        rates,
		forms:        forms,
		eventID:      cfg.EventID,
		channelID:    channelID,
		fallbackTier: fallbackTier,
	}
}

// MapRow resolves the row's rate and form fields and builds the participant
// record. The tier name doubles as distributor code and rate name; the price
// is always 0 because the spreadsheet carries no price column.
func (m *Mapper) MapRow(ctx context.Context, row *domain.Row) (*weezevent.Participant, error) {
	tier := row.GetOr("tarif", m.fallbackTier)

	rateID, err := m.rates.ResolveRate(ctx, registry.RateRequest{
		ChannelID:     m.channelID,
		DistributorID: tier,
		Name:          tier,
		Price:         0,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to resolve rate for tier %q: %w", tier, err)
	}

	form, err := m.forms.MapRowToForm(ctx, rateID, row)
	if err != nil {
		return nil, fmt.Errorf("failed to map form fields for tier %q: %w", tier, err)
	}

	p := &weezevent.Participant{
		EventID:   m.eventID,
		RateID:    rateID,
		LastName:  row.Get("nom"),
		FirstName: row.Get("prenom"),
		Form:      form,
		Delete:    false,
		Notify:    false,
	}
	if row.Has("barcode_id") {
		p.BarcodeID = row.Get("barcode_id")
	}
	if row.Has("email") {
		p.Email = row.Get("email")
	}
	return p, nil
}

// MapRows maps every row in order.
func (m *Mapper) MapRows(ctx context.Context, rows []*domain.Row) ([]weezevent.Participant, error) {
	participants := make([]weezevent.Participant, 0, len(rows))
	for i, row := range rows {
		p, err := m.MapRow(ctx, row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		participants = append(participants, *p)
	}
	return participants, nil
}
