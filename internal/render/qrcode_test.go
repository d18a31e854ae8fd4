package render

import "testing"

func TestGenerateQRCodeImage(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		size    int
		wantNil bool
		want    int
	}{
		{"empty payload", "", 100, true, 0},
		{"explicit size", "owais.io", 150, false, 150},
		{"default size", "owais.io", 0, false, defaultQRCodeSizePx},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := GenerateQRCodeImage(tt.payload, tt.size)
			if err != nil {
				t.Fatalf("GenerateQRCodeImage: %v", err)
			}
			if tt.wantNil {
				if img != nil {
					t.Errorf("got image %v, want nil", img.Bounds())
				}
				return
			}
			if b := img.Bounds(); b.Dx() != tt.want || b.Dy() != tt.want {
				t.Errorf("size = %dx%d, want %dx%d", b.Dx(), b.Dy(), tt.want, tt.want)
			}
		})
	}
}
