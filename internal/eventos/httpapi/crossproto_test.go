package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/radieske/eventos-service/internal/eventos/dto"
	"github.com/radieske/eventos-service/internal/eventos/grpcapi"
	"github.com/radieske/eventos-service/pkg/eventospb"
)

// Os dois gateways leem o mesmo registro com conteúdo idêntico campo a
// campo, inclusive a distinção ausente-vs-zero nos opcionais.
func TestCrossProtocolConsistency(t *testing.T) {
	h, r, _ := newTestServer(t)
	token := testToken(t, time.Hour)

	rec := doRequest(t, h, http.MethodPost, "/api/v1/eventos", token, map[string]any{
		"name":         "Derby",
		"sport":        "soccer",
		"scheduled_at": "2025-01-01T20:00:00Z",
		"home_team":    "Grêmio",
		"odds_home":    1.85,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var created dto.EventoResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	// mesma leitura pelo gateway REST
	rec = doRequest(t, h, http.MethodGet, "/api/v1/eventos/"+created.ID, token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var viaHTTP dto.EventoResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &viaHTTP))

	// e pelo gateway gRPC, sobre o mesmo repositório
	g := grpcapi.NewServer(zap.NewNop(), r)
	viaGRPC, err := g.GetEvento(context.Background(), &eventospb.GetEventoRequest{Id: created.ID})
	require.NoError(t, err)

	assert.Equal(t, viaHTTP.ID, viaGRPC.GetId())
	assert.Equal(t, viaHTTP.Name, viaGRPC.GetName())
	assert.Equal(t, viaHTTP.Sport, viaGRPC.GetSport())
	assert.Equal(t, viaHTTP.ScheduledAt.Format(time.RFC3339), viaGRPC.GetScheduledAt())
	assert.Equal(t, viaHTTP.Status, viaGRPC.GetStatus())
	assert.Equal(t, viaHTTP.CreatedAt.Format(time.RFC3339), viaGRPC.GetCreatedAt())

	// definidos num, definidos no outro
	require.NotNil(t, viaHTTP.HomeTeam)
	require.NotNil(t, viaGRPC.HomeTeam)
	assert.Equal(t, *viaHTTP.HomeTeam, viaGRPC.GetHomeTeam())
	require.NotNil(t, viaGRPC.OddsHome)
	assert.Equal(t, *viaHTTP.OddsHome, viaGRPC.GetOddsHome())

	// ausentes num, ausentes no outro: nada colapsa em ""/0.0
	assert.Nil(t, viaHTTP.AwayTeam)
	assert.Nil(t, viaGRPC.AwayTeam)
	assert.Nil(t, viaHTTP.OddsDraw)
	assert.Nil(t, viaGRPC.OddsDraw)
}
