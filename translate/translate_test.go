package translate

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("line 3 'D=X' comp invalid", From("line %d '%v' %v", 3, "D=X", "comp invalid"))
	assert.Equal("R1", From("R%d", 1))
}

func TestFprintf(t *testing.T) {
	assert := assert.New(t)

	buf := &bytes.Buffer{}
	n, err := Fprintf(buf, "%v commands parsed\n", 7)
	assert.NoError(err)
	assert.Equal(len("7 commands parsed\n"), n)
	assert.Equal("7 commands parsed\n", buf.String())
}
