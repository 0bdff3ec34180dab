package core

import (
	"fmt"
	"strings"
)

// MissingParameterError names exactly the parameter keys a task line
// referenced that the run's parameter store does not contain.
type MissingParameterError struct {
	Task string
	Keys []string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("core: task %q missing required keys: %s", e.Task, strings.Join(e.Keys, ", "))
}

// Resolve binds a descriptor's parameter keys against the store. Argument
// order follows the order of declaration on the task line, positionally
// matching the target function's parameters.
func Resolve(task TaskDescriptor, reg *Registry, params Params) (ResolvedTask, error) {
	fn, ok := reg.Lookup(task.Name)
	if !ok {
		return ResolvedTask{}, fmt.Errorf("core: function %q not found", task.Name)
	}

	if missing := params.Missing(task.ParameterKeys); len(missing) > 0 {
		return ResolvedTask{}, &MissingParameterError{Task: task.Name, Keys: missing}
	}

	args := make([]any, len(task.ParameterKeys))
	for i, key := range task.ParameterKeys {
		args[i], _ = params.Lookup(key)
	}

	return ResolvedTask{TaskDescriptor: task, Func: fn, Args: args}, nil
}
