package wallet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	assert.Equal(t, "001", Format(1))
	assert.Equal(t, "003", Format(3))
	assert.Equal(t, "042", Format(42))
	assert.Equal(t, "999", Format(999))
	assert.Equal(t, "1000", Format(1000))
}

func TestParse(t *testing.T) {
	assert.Equal(t, 2, Parse("002"))
	assert.Equal(t, 999, Parse("999"))
	assert.Equal(t, 0, Parse(""))
	assert.Equal(t, 0, Parse("abc"))
	assert.Equal(t, 0, Parse("CARTEIRA-7"))
	assert.Equal(t, 0, Parse("-5"))
}

func TestRoundTripNext(t *testing.T) {
	// existing {001, 002} -> next is 003
	last := Parse("002")
	assert.Equal(t, "003", Format(last+1))

	// no previous wallet -> 001
	assert.Equal(t, "001", Format(Parse("")+1))

	// unparsable legacy id -> restart at 001
	assert.Equal(t, "001", Format(Parse("LEGACY")+1))
}
