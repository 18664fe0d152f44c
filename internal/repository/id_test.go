package repository

import "testing"

func TestNextSequentialID(t *testing.T) {
	tests := []struct {
		name    string
		prefix  string
		lastID  string
		want    string
		wantErr bool
	}{
		{name: "empty table starts at 1", prefix: "REQ", lastID: "", want: "REQ001"},
		{name: "increments max", prefix: "REQ", lastID: "REQ004", want: "REQ005"},
		{name: "employee prefix", prefix: "EMP", lastID: "EMP005", want: "EMP006"},
		{name: "three digit rollover", prefix: "REQ", lastID: "REQ099", want: "REQ100"},
		{name: "grows past padding", prefix: "REQ", lastID: "REQ999", want: "REQ1000"},
		{name: "malformed suffix", prefix: "REQ", lastID: "REQabc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := nextSequentialID(tt.prefix, tt.lastID)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %q", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
