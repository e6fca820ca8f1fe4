package order_test

import (
	"fmt"
	"testing"

	"remont/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate every defined status", func(t *testing.T) {
		for _, status := range order.AllStatuses() {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject Unknown status", func(t *testing.T) {
		err := order.StatusUnknown.Validate()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "status")
	})

	t.Run("should reject out of range status", func(t *testing.T) {
		err := order.Status(1000).Validate()

		require.Error(t, err)
	})
}

func TestStatus_String(t *testing.T) {
	t.Run("should render canonical names", func(t *testing.T) {
		assert.Equal(t, "Pending", order.StatusPending.String())
		assert.Equal(t, "Assigned", order.StatusAssigned.String())
		assert.Equal(t, "WaitingDecision", order.StatusWaitingDecision.String())
		assert.Equal(t, "RepairCancelled", order.StatusRepairCancelled.String())
		assert.Equal(t, "CompletedOnSiteInstalling", order.StatusCompletedOnSiteInstalling.String())
	})

	t.Run("should render unknown for invalid status", func(t *testing.T) {
		assert.Equal(t, "Unknown", order.Status(1000).String())
	})

	t.Run("should round-trip canonical names", func(t *testing.T) {
		for _, status := range order.AllStatuses() {
			parsed, err := order.StatusFromString(status.String())

			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
	})

	t.Run("should fail parsing garbage", func(t *testing.T) {
		_, err := order.StatusFromString("NotAStatus")

		require.Error(t, err)
	})
}

func TestStatus_Label(t *testing.T) {
	t.Run("should have a label for every status", func(t *testing.T) {
		for _, status := range order.AllStatuses() {
			assert.NotEmpty(t, status.Label(), "status %s has no label", status.String())
		}
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	terminal := []order.Status{
		order.StatusCompleted,
		order.StatusCancelled,
		order.StatusCompletedOnSiteInstalling,
		order.StatusCompletedOnSiteRepairing,
	}

	t.Run("should mark final statuses terminal", func(t *testing.T) {
		for _, status := range terminal {
			assert.True(t, status.IsTerminal(), "status %s should be terminal", status.String())
		}
	})

	t.Run("should mark all other statuses non-terminal", func(t *testing.T) {
		for _, status := range order.AllStatuses() {
			isTerminal := false
			for _, ts := range terminal {
				if status == ts {
					isTerminal = true
				}
			}
			if !isTerminal {
				assert.False(t, status.IsTerminal(), "status %s should not be terminal", status.String())
			}
		}
	})
}
