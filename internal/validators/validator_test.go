package validators

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/anonto42/nano-midea/notifications/internal/models"
	"github.com/labstack/echo/v4"
)

func TestNotificationRules(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name    string
		record  models.Notification
		wantErr string
	}{
		{
			name:   "seed record",
			record: models.SeedNotifications()[0],
		},
		{
			name:    "missing actor",
			record:  models.Notification{ID: 1, Action: "followed you"},
			wantErr: "ActorName",
		},
		{
			name:    "missing action",
			record:  models.Notification{ID: 1, ActorName: "Angela Gray"},
			wantErr: "Action",
		},
		{
			name: "unknown target kind",
			record: models.Notification{
				ID: 1, ActorName: "a", Action: "b",
				Target: models.StringPtr("x"), TargetKind: models.KindPtr("page"),
			},
			wantErr: "oneof",
		},
		{
			name: "kind without target",
			record: models.Notification{
				ID: 1, ActorName: "a", Action: "b",
				TargetKind: models.KindPtr(models.TargetGroup),
			},
			wantErr: "excluded_without_target",
		},
		{
			name: "target without kind",
			record: models.Notification{
				ID: 1, ActorName: "a", Action: "b",
				Target: models.StringPtr("x"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.record)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("error: got %v want substring %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidateReturnsBadRequest(t *testing.T) {
	v := NewValidator()
	err := v.Validate(&models.ReplyDraftRequest{Text: strings.Repeat("a", 2001)})

	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected echo.HTTPError, got %T", err)
	}
	if httpErr.Code != http.StatusBadRequest {
		t.Fatalf("code: got %d want %d", httpErr.Code, http.StatusBadRequest)
	}

	if err := v.Validate(&models.ReplyDraftRequest{Text: "   "}); err != nil {
		t.Fatalf("blank draft should pass validation: %v", err)
	}
}
