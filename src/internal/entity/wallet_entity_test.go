package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseWalletType(t *testing.T) {
	for _, name := range []string{"Rendi Pay", "Dinda Pay", "Erwin Pay"} {
		parsed, ok := ParseWalletType(name)
		assert.True(t, ok)
		assert.Equal(t, WalletType(name), parsed)
	}

	for _, name := range []string{"", "rendi pay", "RendiPay", "Cash", "Rendi Pay "} {
		_, ok := ParseWalletType(name)
		assert.False(t, ok, "%q must not parse", name)
	}
}

func TestAllWalletTypes(t *testing.T) {
	types := AllWalletTypes()
	assert.Len(t, types, 3)
	for _, wt := range types {
		assert.True(t, wt.Valid())
	}
}
