package collections

// InfiniteQueue is an unbounded, channel-fronted FIFO.  Writes to In never
// block on a slow reader; values are buffered in a Queue until they are
// taken from Out.  A single goroutine owns the buffer.
type InfiniteQueue struct {
	in, out chan interface{}
	length  chan int
	q       *Queue[interface{}]
}

// CreateInfiniteQueue returns a running InfiniteQueue.  Call Close to stop
// accepting values; Out is closed once the buffer has drained.
func CreateInfiniteQueue() *InfiniteQueue {
	iq := &InfiniteQueue{
		in:     make(chan interface{}),
		out:    make(chan interface{}),
		length: make(chan int),
		q:      CreateQueue[interface{}](),
	}

	go iq.process()

	return iq
}

// Close stops the queue from accepting new values
func (iq *InfiniteQueue) Close() {
	close(iq.in)
}

// In returns the channel to write values to
func (iq *InfiniteQueue) In() chan<- interface{} {
	return iq.in
}

// Len returns the number of buffered values not yet taken from Out
func (iq *InfiniteQueue) Len() int {
	return <-iq.length
}

// Out returns the channel to read values from, in the order written
func (iq *InfiniteQueue) Out() <-chan interface{} {
	return iq.out
}

func (iq *InfiniteQueue) process() {
	in := iq.in
	var out chan interface{}
	var next interface{}
	count := 0

	for in != nil || out != nil {
		select {
		case v, ok := <-in:
			if ok {
				iq.q.Enqueue(v)
				count++
			} else {
				in = nil
			}
		case out <- next:
			iq.q.Dequeue()
			count--
		case iq.length <- count:
		}

		if v, err := iq.q.Front(); err == nil {
			out = iq.out
			next = v
		} else {
			out = nil
			next = nil
		}
	}

	close(iq.out)
	close(iq.length)
}
