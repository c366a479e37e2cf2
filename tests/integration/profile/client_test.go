package profile

import (
	"context"
	"testing"

	"github.com/h2non/gock"
	"github.com/stretchr/testify/assert"

	"swaypp-service/internal/config"
	"swaypp-service/internal/profile"
)

func TestClient_GetProfile(t *testing.T) {
	tests := []struct {
		name          string
		mockResponse  func()
		expectPartial bool
		expectedError bool
	}{
		{
			name: "Found",
			mockResponse: func() {
				gock.New("http://profiles.example.com").
					Get("/profiles/m1").
					Reply(200).
					JSON(map[string]string{
						"beneficiary_name": "Maria Petronio",
						"business_name":    "NexaHolding",
						"address":          "Ch des Fleurs de lys 5b",
						"postal_code":      "1350",
						"city":             "Orbe",
						"iban":             "CH1500243243FS1502472",
					})
			},
			expectPartial: true,
		},
		{
			name: "NotFoundIsAMiss",
			mockResponse: func() {
				gock.New("http://profiles.example.com").
					Get("/profiles/m1").
					Reply(404).
					JSON(map[string]string{"error": "not found"})
			},
			expectPartial: false,
		},
		{
			name: "ServerError",
			mockResponse: func() {
				gock.New("http://profiles.example.com").
					Get("/profiles/m1").
					Reply(500).
					JSON(map[string]string{"error": "internal server error"})
			},
			expectedError: true,
		},
		{
			name: "MalformedBody",
			mockResponse: func() {
				gock.New("http://profiles.example.com").
					Get("/profiles/m1").
					Reply(200).
					BodyString("not json")
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer gock.Off()
			tt.mockResponse()

			client := profile.NewClient(config.Profile{
				BaseURL: "http://profiles.example.com",
				APIKey:  "test-key",
			})

			partial, err := client.GetProfile(context.Background(), "m1")

			if tt.expectedError {
				assert.Error(t, err)
				assert.Nil(t, partial)
			} else if tt.expectPartial {
				assert.NoError(t, err)
				assert.NotNil(t, partial)
				assert.Equal(t, "Maria Petronio", partial.BeneficiaryName)
				assert.Equal(t, "CH1500243243FS1502472", partial.IBAN)
			} else {
				assert.NoError(t, err)
				assert.Nil(t, partial)
			}
			assert.True(t, gock.IsDone())
		})
	}
}
