package controllers_test

import (
	"net/http"
	"testing"

	"github.com/V-Shkrobatskyi/restaurant-kitchen-service/entity"
)

func TestCreateCookExperienceBound(t *testing.T) {
	engine, db := newTestServer(t)
	cl := &client{engine: engine}

	tests := []struct {
		name     string
		body     string
		wantCode int
	}{
		{
			name:     "valid",
			body:     `{"username":"a.cook","yearsOfExperience":12}`,
			wantCode: http.StatusCreated,
		},
		{
			name:     "three digit experience rejected",
			body:     `{"username":"b.cook","yearsOfExperience":100}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "negative experience rejected",
			body:     `{"username":"c.cook","yearsOfExperience":-1}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "boundary 99 accepted",
			body:     `{"username":"d.cook","yearsOfExperience":99}`,
			wantCode: http.StatusCreated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := cl.do(t, http.MethodPost, "/cooks", tt.body)
			if w.Code != tt.wantCode {
				t.Fatalf("status = %d, want %d, body %s", w.Code, tt.wantCode, w.Body)
			}
		})
	}

	var count int64
	db.Model(&entity.Cook{}).Count(&count)
	if count != 2 {
		t.Fatalf("cooks stored = %d, want 2", count)
	}
}
