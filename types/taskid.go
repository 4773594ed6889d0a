package types

import (
	"strings"

	"github.com/juju/errors"
	"github.com/spf13/cast"
)

// TaskID identifies one task:
// {queryID}.{stage}.{stageExecution}.{partition}.{attempt}.
// It never changes for the lifetime of the task.
type TaskID struct {
	QueryID        string
	StageID        int32
	StageExecution int32
	Partition      int32
	Attempt        int32
}

// ParseTaskID parses the dot-separated wire form of a task identifier.
func ParseTaskID(s string) (TaskID, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 5 || parts[0] == "" {
		return TaskID{}, errors.NotValidf("task id %q", s)
	}

	numbers := make([]int32, 0, 4)
	for _, part := range parts[1:] {
		n, err := cast.ToInt32E(part)
		if err != nil {
			return TaskID{}, errors.NotValidf("task id %q: field %q", s, part)
		}
		numbers = append(numbers, n)
	}

	return TaskID{
		QueryID:        parts[0],
		StageID:        numbers[0],
		StageExecution: numbers[1],
		Partition:      numbers[2],
		Attempt:        numbers[3],
	}, nil
}

func (id TaskID) String() string {
	return strings.Join([]string{
		id.QueryID,
		cast.ToString(id.StageID),
		cast.ToString(id.StageExecution),
		cast.ToString(id.Partition),
		cast.ToString(id.Attempt),
	}, ".")
}
