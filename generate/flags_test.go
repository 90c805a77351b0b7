package generate

import (
	"testing"
)

func TestParseLevels(t *testing.T) {
	tests := []struct {
		name    string
		in      []string
		want    map[string]int
		wantErr bool
	}{
		{"single", []string{"h1=4"}, map[string]int{"h1": 4}, false},
		{"spaces", []string{" h2 = 3 ", "p=0"}, map[string]int{"h2": 3, "p": 0}, false},
		{"negative", []string{"small=-1"}, map[string]int{"small": -1}, false},
		{"repeated name keeps last", []string{"h1=4", "h1=5"}, map[string]int{"h1": 5}, false},
		{"complex selector", []string{".lead p=1"}, map[string]int{".lead p": 1}, false},
		{"no separator", []string{"h1"}, nil, true},
		{"empty name", []string{"=1"}, nil, true},
		{"bad factor", []string{"h1=x"}, nil, true},
		{"fractional factor", []string{"h1=1.5"}, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseLevels(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseLevels() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if len(got) != len(tt.want) {
				t.Fatalf("parseLevels() = %v, want %v", got, tt.want)
			}
			for k, v := range tt.want {
				if got[k] != v {
					t.Errorf("parseLevels()[%q] = %d, want %d", k, got[k], v)
				}
			}
		})
	}
}
