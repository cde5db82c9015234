package scaffold

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCheckExisting(t *testing.T) {
	tests := []struct {
		name      string
		setupFunc func(string)
		wantErr   bool
		errMsg    string
	}{
		{
			name:      "no existing files",
			setupFunc: func(dir string) {},
			wantErr:   false,
		},
		{
			name: "existing gavel.yml only",
			setupFunc: func(dir string) {
				if err := os.WriteFile(filepath.Join(dir, "gavel.yml"), []byte("version: '1.0'"), 0644); err != nil {
					t.Fatal(err)
				}
			},
			wantErr: true,
			errMsg:  "gavel.yml",
		},
		{
			name: "existing teams.csv only",
			setupFunc: func(dir string) {
				if err := os.WriteFile(filepath.Join(dir, "teams.csv"), []byte("BUIDL ID\n"), 0644); err != nil {
					t.Fatal(err)
				}
			},
			wantErr: true,
			errMsg:  "teams.csv",
		},
		{
			name: "both files exist",
			setupFunc: func(dir string) {
				if err := os.WriteFile(filepath.Join(dir, "gavel.yml"), []byte("version: '1.0'"), 0644); err != nil {
					t.Fatal(err)
				}
				if err := os.WriteFile(filepath.Join(dir, "teams.csv"), []byte("BUIDL ID\n"), 0644); err != nil {
					t.Fatal(err)
				}
			},
			wantErr: true,
			errMsg:  "project already initialized",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := chdirTemp(t)
			tt.setupFunc(tmpDir)

			err := CheckExisting()

			if (err != nil) != tt.wantErr {
				t.Errorf("CheckExisting() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if tt.wantErr && err != nil && tt.errMsg != "" {
				if !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("CheckExisting() error = %v, should contain %v", err.Error(), tt.errMsg)
				}
			}
		})
	}
}
