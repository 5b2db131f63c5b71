package async

// Completion hands out a pending task and the means to finish it. The first
// of Resolve, Reject or Cancel wins; the others return false.
type Completion[T any] struct {
	task *Task[T]
}

func NewCompletion[T any]() *Completion[T] {
	return &Completion[T]{task: newTask[T]()}
}

func (c *Completion[T]) Task() *Task[T] {
	return c.task
}

func (c *Completion[T]) Resolve(value T) bool {
	return c.task.resolve(value)
}

func (c *Completion[T]) Reject(err error) bool {
	return c.task.reject(err)
}

func (c *Completion[T]) Cancel(cause error) bool {
	return c.task.cancel(cause)
}
