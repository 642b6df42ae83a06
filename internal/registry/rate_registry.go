package registry

import (
	"context"
	"fmt"
	"strconv"

	"github.com/weeztools/weezimport/internal/weezevent"
	"github.com/weeztools/weezimport/pkg/logger"
	"go.uber.org/zap"
)

// RateRequest describes the rate a row needs. CategoryID left at zero matches
// the platform default category.
type RateRequest struct {
	ChannelID     int
	DistributorID string
	Name          string
	Price         float64
	CategoryID    int
	Description   string
}

// RateRegistry caches the event's rates keyed by (channel id, distributor
// code) and creates missing ones on demand. The cache lives for one run; it is
// never reconciled against the remote state after construction, so a cache hit
// wins even when the requested name or price differ.
type RateRegistry struct {
	gw      weezevent.Gateway
	eventID string
	rates   map[string]weezevent.Rate
	log     *logger.Logger
}

// NewRateRegistry loads the event's rates. Rates without a distributor code
// are not addressable by the import and are dropped from the cache.
func NewRateRegistry(ctx context.Context, gw weezevent.Gateway, eventID string) (*RateRegistry, error) {
	rates, err := gw.ListRates(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to load rates for event %s: %w", eventID, err)
	}

	r := &RateRegistry{
		gw:      gw,
		eventID: eventID,
		rates:   make(map[string]weezevent.Rate, len(rates)),
		log:     logger.Get(),
	}
	for _, rate := range rates {
		if rate.DistributorID == "" {
			continue
		}
		r.rates[rateKey(rate.ChannelID, rate.DistributorID)] = rate
	}

	r.log.Info("loaded rate cache",
		zap.String("event_id", eventID),
		zap.Int("rates", len(r.rates)))
	return r, nil
}

// ResolveRate returns the rate id for the request, creating the rate remotely
// on a cache miss. A second call with the same (channel, distributor) pair
// returns the cached id without any remote call.
func (r *RateRegistry) ResolveRate(ctx context.Context, req RateRequest) (weezevent.ID, error) {
	key := rateKey(req.ChannelID, req.DistributorID)
	if rate, ok := r.rates[key]; ok {
		// TODO reconcile name/price against the cached rate? Current behavior
		// is to trust the cache.
		return rate.ID, nil
	}

	rate, err := r.gw.CreateRate(ctx, r.eventID, weezevent.RateInput{
		Name:          req.Name,
		Description:   req.Description,
		DistributorID: req.DistributorID,
		Price:         req.Price,
		ChannelID:     req.ChannelID,
		CategoryID:    req.CategoryID,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create rate %q: %w", req.Name, err)
	}

	r.rates[key] = *rate
	return rate.ID, nil
}

// Size returns the number of cached rates.
func (r *RateRegistry) Size() int {
	return len(r.rates)
}

func rateKey(channelID int, distributorID string) string {
	return strconv.Itoa(channelID) + ":::" + distributorID
}
