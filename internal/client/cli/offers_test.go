package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Jtanchezz/GeneralStore/internal/client/models"
)

func TestDescribeOffer(t *testing.T) {
	offer := models.Offer{
		CameraTitle:       "K1000",
		Brand:             "Pentax",
		Condition:         string(models.ConditionGood),
		AskingPriceCents:  15000,
		PreferredCurrency: "USD",
		Status:            models.OfferStatusPending,
	}
	assert.Equal(t, "Pentax K1000 (Good) asking 150.00 USD - pending", describeOffer(offer))

	counter := int64(12000)
	offer.CounterOfferCents = &counter
	offer.Status = models.OfferStatusCountered
	assert.Equal(t, "Pentax K1000 (Good) asking 150.00 USD - countered, counter 120.00 USD",
		describeOffer(offer))

	offer.Status = models.OfferStatusAccepted
	assert.Equal(t, "Pentax K1000 (Good) asking 150.00 USD - accepted, counter 120.00 USD (closed)",
		describeOffer(offer))
}
