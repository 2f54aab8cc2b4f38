package session

import (
	"context"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/rogerio-castellano/catalog-manager/internal/models"
	"github.com/rogerio-castellano/catalog-manager/internal/seed"
)

// Import adds the valid rows of a CSV catalog. Rejected rows are reported
// in the result and leave the repository untouched.
func (c *Controller) Import(ctx context.Context, r io.Reader) (seed.ImportResult, error) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return seed.ImportResult{}, ErrControllerClosed
	}

	result, err := seed.ImportCSV(r, c.store)
	if err != nil {
		c.mu.Unlock()
		return seed.ImportResult{}, err
	}

	var n models.Notification
	if result.Imported > 0 {
		n = c.queueLocked(models.NotificationSuccess, fmt.Sprintf("%d products imported successfully!", result.Imported))
	}
	c.reconcilePageLocked()
	c.mu.Unlock()

	c.log.WithFields(logrus.Fields{"imported": result.Imported, "rejected": len(result.Errors)}).Info("catalog import finished")
	if result.Imported > 0 {
		c.deliver(ctx, n)
	}
	return result, nil
}
