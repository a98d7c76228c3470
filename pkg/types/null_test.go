package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNullInt64Unmarshal(t *testing.T) {
	tests := []struct {
		in      string
		want    NullInt64
		wantErr bool
	}{
		{`3`, Int64(3), false},
		{`"3"`, Int64(3), false},
		{`" 12 "`, Int64(12), false},
		{`4.0`, Int64(4), false},
		{`""`, NullInt64{}, false},
		{`null`, NullInt64{}, false},
		{`"abc"`, NullInt64{}, true},
		{`2.5`, NullInt64{}, true},
		{`true`, NullInt64{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var got NullInt64
			err := json.Unmarshal([]byte(tt.in), &got)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNullFloat64Unmarshal(t *testing.T) {
	var got struct {
		Fee  NullFloat64 `json:"fee"`
		Rate NullFloat64 `json:"rate"`
		None NullFloat64 `json:"none"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"fee": "49.99", "rate": 50, "none": ""}`), &got))
	assert.Equal(t, Float64(49.99), got.Fee)
	assert.Equal(t, Float64(50), got.Rate)
	assert.False(t, got.None.Valid)

	assert.Error(t, json.Unmarshal([]byte(`"fifty"`), &got.Fee))
}

func TestNullStringUnmarshal(t *testing.T) {
	var got struct {
		Email NullString `json:"email"`
		Phone NullString `json:"phone"`
		Code  NullString `json:"code"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"email": "", "phone": "555-1234", "code": 42}`), &got))
	assert.False(t, got.Email.Valid)
	assert.Equal(t, String("555-1234"), got.Phone)
	assert.Equal(t, String("42"), got.Code)
}

func TestNullMarshal(t *testing.T) {
	v := struct {
		ID    NullInt64   `json:"id"`
		Fee   NullFloat64 `json:"fee"`
		Name  NullString  `json:"name"`
		Empty NullString  `json:"empty"`
	}{Int64(7), Float64(45.5), String("Yoga"), String("")}

	b, err := json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id": 7, "fee": 45.5, "name": "Yoga", "empty": null}`, string(b))
}

func TestPresent(t *testing.T) {
	assert.False(t, Int64(0).Present())
	assert.True(t, Int64(1).Present())
	assert.False(t, Float64(0).Present())
	assert.True(t, Float64(0.5).Present())
	assert.False(t, String("  ").Present())
	assert.True(t, String("x").Present())
	assert.False(t, NullInt64{}.Present())
}
