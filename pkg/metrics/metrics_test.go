package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()

	require.NotPanics(t, func() { RegisterCollectors(reg) })
	assert.Panics(t, func() { RegisterCollectors(reg) })
}

func TestObserveKeycloakCall(t *testing.T) {
	before := testutil.ToFloat64(KeycloakRequests.WithLabelValues("test_op", OutcomeSuccess))
	beforeErr := testutil.ToFloat64(KeycloakRequests.WithLabelValues("test_op", OutcomeError))

	ObserveKeycloakCall("test_op", time.Now(), nil)
	ObserveKeycloakCall("test_op", time.Now(), errors.New("boom"))
	ObserveKeycloakCall("test_op", time.Now(), errors.New("boom"))

	assert.Equal(t, before+1, testutil.ToFloat64(KeycloakRequests.WithLabelValues("test_op", OutcomeSuccess)))
	assert.Equal(t, beforeErr+2, testutil.ToFloat64(KeycloakRequests.WithLabelValues("test_op", OutcomeError)))
}
