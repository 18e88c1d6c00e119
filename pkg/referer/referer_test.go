package referer_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/innkeeper/pkg/referer"
)

func TestGet(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		header  *string
		want    string
		wantOK  bool
		wantDef string
	}{
		{name: "absent", header: nil, want: "", wantOK: false, wantDef: "/inn/0"},
		{name: "plain", header: ptr("https://example.com/post/1"), want: "https://example.com/post/1", wantOK: true, wantDef: "https://example.com/post/1"},
		{name: "quoted", header: ptr(`"https://example.com/inn/3"`), want: "https://example.com/inn/3", wantOK: true, wantDef: "https://example.com/inn/3"},
		{name: "empty", header: ptr(""), want: "", wantOK: true, wantDef: "/inn/0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := httptest.NewRequest("GET", "/", nil)
			if tt.header != nil {
				r.Header["Referer"] = []string{*tt.header}
			}

			got, ok := referer.Get(r)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantDef, referer.GetOr(r, "/inn/0"))
		})
	}
}

func ptr(s string) *string { return &s }
