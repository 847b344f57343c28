package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolvePage(t *testing.T) {
	tests := []struct {
		path          string
		authenticated bool
		want          Page
	}{
		{"/dashboard", false, Page{Path: "/login", Redirected: true, Protected: true}},
		{"/dashboard", true, Page{Path: "/dashboard", Protected: true}},
		{"/sell/", false, Page{Path: "/login", Redirected: true, Protected: true}},
		{"/register-expert", true, Page{Path: "/register-expert", Protected: true}},
		{"/register-vendor", false, Page{Path: "/login", Redirected: true, Protected: true}},
		{"/marketplace", false, Page{Path: "/marketplace"}},
		{"/login", true, Page{Path: "/login"}},
		{"", false, Page{Path: "/"}},
		{"/", true, Page{Path: "/"}},
		{"/admin", true, Page{Path: "/", Redirected: true}},
		{"help", false, Page{Path: "/help"}},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolvePage(tt.path, tt.authenticated))
		})
	}
}
