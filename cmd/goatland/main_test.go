package main

import "testing"

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name    string
		opts    options
		wantErr bool
	}{
		{"defaults", options{radius: 1, scale: 4}, false},
		{"single chunk", options{radius: 0, scale: 1}, false},
		{"negative radius", options{radius: -1, scale: 4, placements: "-"}, true},
		{"zero scale", options{radius: 1, scale: 0}, true},
	}
	for _, tt := range tests {
		if err := tt.opts.validate(); (err != nil) != tt.wantErr {
			t.Errorf("%s: validate() = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
	}
}
