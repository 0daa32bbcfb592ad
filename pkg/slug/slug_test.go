// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/folio/pkg/slug"
)

func TestFrom(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Introduction to Programming", "introduction-to-programming"},
		{"  Variables & Data Types  ", "variables-data-types"},
		{"Café Crème", "cafe-creme"},
		{"What is Go?", "what-is-go"},
		{"---", ""},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, slug.From(tt.in), tt.in)
	}
}

func TestSet_Next(t *testing.T) {
	var set slug.Set

	assert.Equal(t, "setup", set.Next("Setup"))
	assert.Equal(t, "setup-1", set.Next("Setup"))
	assert.Equal(t, "setup-2", set.Next("setup!"))
	assert.Equal(t, "install", set.Next("Install"))

	// A literal "Setup 1" heading must not collide with the generated suffix.
	assert.Equal(t, "setup-1-1", set.Next("Setup 1"))
}
