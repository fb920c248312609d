package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/inventario-lotes/pkg/slug"
)

func TestMake(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Crema Dental Menta", "crema-dental-menta"},
		{"Jabón Líquido 500ml", "jabon-liquido-500ml"},
		{"  Café -- Premium  ", "cafe-premium"},
		{"Ñame", "name"},
		{"ALL CAPS", "all-caps"},
		{"", ""},
		{"---", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, slug.Make(c.in), "slug de %q", c.in)
	}
}
