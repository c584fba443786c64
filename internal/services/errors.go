package services

import (
	"fmt"

	"vdpcza/pkg/utils"
)

// dbError keeps the driver message for the logs while mapping to the generic sentinel.
func dbError(err error) error {
	return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
}

func dbErrorOrNil(err error) error {
	if err == nil {
		return nil
	}
	return dbError(err)
}

// payload is the body of a realtime event.
type payload = map[string]interface{}
