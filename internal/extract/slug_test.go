package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVendorSlug_Simple(t *testing.T) {
	assert.Equal(t, "telekom_deutschland_gmbh", VendorSlug("Telekom Deutschland GmbH"))
}

func TestVendorSlug_Umlauts(t *testing.T) {
	slug := VendorSlug("Müller & Söhne AG")
	assert.Equal(t, "mueller_soehne_ag", slug)
	assert.NotContains(t, slug, "ü")
	assert.NotContains(t, slug, "ö")
}

func TestVendorSlug_AllSpecials(t *testing.T) {
	assert.Equal(t, "aeoeue_ss", VendorSlug("ÄÖÜ ß"))
}

func TestVendorSlug_Sentinel(t *testing.T) {
	assert.Equal(t, UnknownVendorSlug, VendorSlug(""))
	assert.Equal(t, UnknownVendorSlug, VendorSlug("   "))
	assert.Equal(t, UnknownVendorSlug, VendorSlug("!!!"))
}

func TestVendorSlug_TrimsUnderscores(t *testing.T) {
	assert.Equal(t, "acme", VendorSlug("--Acme--"))
}

func TestVendorSlug_Deterministic(t *testing.T) {
	assert.Equal(t, VendorSlug("Bäcker & Co. KG"), VendorSlug("Bäcker & Co. KG"))
}
