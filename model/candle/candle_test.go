package candle

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeNumber(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    float64
		wantErr bool
	}{
		{name: "number", raw: `12.5`, want: 12.5},
		{name: "numeric string", raw: `"12.5"`, want: 12.5},
		{name: "integer string", raw: `"100"`, want: 100},
		{name: "padded string", raw: `" 7.25 "`, want: 7.25},
		{name: "exponent", raw: `1e3`, want: 1000},
		{name: "unparsable string", raw: `"abc"`, want: 0},
		{name: "empty string", raw: `""`, want: 0},
		{name: "null", raw: `null`, wantErr: true},
		{name: "bool", raw: `true`, wantErr: true},
		{name: "object", raw: `{"v":1}`, wantErr: true},
		{name: "array", raw: `[1]`, wantErr: true},
		{name: "missing", raw: ``, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeNumber([]byte(tt.raw))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeNumber_WrongTypeIsClassified(t *testing.T) {
	_, err := DecodeNumber([]byte(`{}`))
	assert.ErrorIs(t, err, ErrWrongType)
	assert.Contains(t, err.Error(), "object")
}

func TestDecodeResponse_MixedEncodings(t *testing.T) {
	body := []byte(`{"code":0,"data":[
		{"timestamp":1669899600,"open":"100","close":100.5,"high":"101","low":"99","volume":"10","amount":"1000"},
		{"timestamp":1669899660,"open":100.5,"close":"n/a","high":102,"low":100,"volume":3,"amount":301.5}
	]}`)

	resp, err := DecodeResponse(body)
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Code)
	require.Len(t, resp.Data, 2)

	assert.Equal(t, CandleStick{
		Timestamp: 1669899600,
		Open:      100,
		Close:     100.5,
		High:      101,
		Low:       99,
		Volume:    10,
		Amount:    1000,
	}, resp.Data[0])

	// order preserved, unparsable close falls back to zero
	assert.Equal(t, int64(1669899660), resp.Data[1].Timestamp)
	assert.Equal(t, 0.0, resp.Data[1].Close)
	assert.Equal(t, 301.5, resp.Data[1].Amount)
}

func TestDecodeResponse_WrongTypeFailsWholeResponse(t *testing.T) {
	body := []byte(`{"code":0,"data":[
		{"timestamp":1,"open":"1","close":"1","high":"1","low":"1","volume":"1","amount":"1"},
		{"timestamp":2,"open":"1","close":"1","high":null,"low":"1","volume":"1","amount":"1"}
	]}`)

	resp, err := DecodeResponse(body)
	assert.Nil(t, resp)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrWrongType)
	assert.Contains(t, err.Error(), "high")
}

func TestDecodeResponse_MissingFieldFails(t *testing.T) {
	body := []byte(`{"code":0,"data":[{"timestamp":1,"open":"1","close":"1","high":"1","low":"1","volume":"1"}]}`)

	_, err := DecodeResponse(body)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "amount")
}

func TestDecodeResponse_WrongShape(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "null body", body: `null`, want: "code"},
		{name: "empty object", body: `{}`, want: "code"},
		{name: "unrelated object", body: `{"msg":"x"}`, want: "code"},
		{name: "null code", body: `{"code":null,"data":[]}`, want: "code"},
		{name: "missing data", body: `{"code":0}`, want: "data"},
		{name: "null data", body: `{"code":0,"data":null}`, want: "data"},
		{name: "missing timestamp", body: `{"code":0,"data":[{"open":"1","close":"1","high":"1","low":"1","volume":"1","amount":"1"}]}`, want: "timestamp"},
		{name: "null timestamp", body: `{"code":0,"data":[{"timestamp":null,"open":"1","close":"1","high":"1","low":"1","volume":"1","amount":"1"}]}`, want: "timestamp"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := DecodeResponse([]byte(tt.body))
			assert.Nil(t, resp)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMissingField)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestDecodeResponse_EmptyData(t *testing.T) {
	resp, err := DecodeResponse([]byte(`{"code":0,"data":[]}`))
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Code)
	assert.Empty(t, resp.Data)
}

func TestDecodeResponse_ErrorEnvelopeWithoutData(t *testing.T) {
	resp, err := DecodeResponse([]byte(`{"code":400,"msg":"invalid symbol"}`))
	require.NoError(t, err)
	assert.Equal(t, 400, resp.Code)
	assert.Nil(t, resp.Data)
}

func TestDecodeResponse_NotJSON(t *testing.T) {
	_, err := DecodeResponse([]byte(`<html>busy</html>`))
	assert.Error(t, err)
}

func TestCandleStick_RoundTrip(t *testing.T) {
	in := CandleStick{
		Timestamp: 1669899600,
		Open:      16950.12,
		Close:     16961.5,
		High:      16999.99,
		Low:       16940.01,
		Volume:    12.345678,
		Amount:    209431.77,
	}

	b, err := json.Marshal(in)
	require.NoError(t, err)

	var out CandleStick
	require.NoError(t, json.Unmarshal(b, &out))

	assert.Equal(t, in.Timestamp, out.Timestamp)
	assert.InDelta(t, in.Open, out.Open, 1e-9)
	assert.InDelta(t, in.Close, out.Close, 1e-9)
	assert.InDelta(t, in.High, out.High, 1e-9)
	assert.InDelta(t, in.Low, out.Low, 1e-9)
	assert.InDelta(t, in.Volume, out.Volume, 1e-9)
	assert.InDelta(t, in.Amount, out.Amount, 1e-9)
}

func TestCandleStick_Time(t *testing.T) {
	c := CandleStick{Timestamp: 1669899600}
	assert.Equal(t, time.Date(2022, 12, 1, 13, 0, 0, 0, time.UTC), c.Time())
}
