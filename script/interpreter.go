package script

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/object88/linkedlists/collections"
	"github.com/object88/linkedlists/log"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// Kind names the structure a command addresses
type Kind string

const (
	// KindList addresses a collections.LinkedList
	KindList Kind = "sll"

	// KindStack addresses a collections.Stack
	KindStack Kind = "stack"

	// KindQueue addresses a collections.Queue
	KindQueue Kind = "queue"
)

// Interpreter executes line-oriented commands against named linked lists,
// stacks, and queues, writing results to its writer.  Structures are created
// the first time their name is used.
type Interpreter struct {
	w   io.Writer
	log *log.Log

	kinds  map[string]Kind
	lists  map[string]*collections.LinkedList[string]
	stacks map[string]*collections.Stack[string]
	queues map[string]*collections.Queue[string]
}

// CreateInterpreter returns a new Interpreter with no structures defined
func CreateInterpreter(w io.Writer, l *log.Log) *Interpreter {
	return &Interpreter{
		w:      w,
		log:    l,
		kinds:  map[string]Kind{},
		lists:  map[string]*collections.LinkedList[string]{},
		stacks: map[string]*collections.Stack[string]{},
		queues: map[string]*collections.Queue[string]{},
	}
}

// RunFile reads the script at path from fs and runs it.
func (i *Interpreter) RunFile(fs afero.Fs, path string) error {
	f, err := fs.Open(path)
	if err != nil {
		return errors.Wrapf(err, "RunFile (%s): failed to open", path)
	}
	defer f.Close()

	return errors.Wrapf(i.Run(f), "RunFile (%s)", path)
}

type scriptLine struct {
	number int
	text   string
}

// Run executes each line from r.  Lines are read on a separate goroutine and
// buffered in an InfiniteQueue, so reading never waits on execution.
// Execution stops at the first malformed command, and the returned error
// names its line number.
func (i *Interpreter) Run(r io.Reader) error {
	lines := collections.CreateInfiniteQueue()

	var readErr error
	go func() {
		s := bufio.NewScanner(r)
		number := 0
		for s.Scan() {
			number++
			lines.In() <- scriptLine{number, s.Text()}
		}
		readErr = s.Err()
		lines.Close()
	}()

	var execErr error
	for v := range lines.Out() {
		if execErr != nil {
			// Drain, so the reader and the queue can finish.
			continue
		}
		line := v.(scriptLine)
		if err := i.Exec(line.text); err != nil {
			execErr = errors.Wrapf(err, "line %d", line.number)
		}
	}

	if execErr != nil {
		return execErr
	}
	return errors.Wrap(readErr, "failed to read script")
}

// Exec runs a single command.  Blank lines are ignored, as is everything
// from a field that starts with `#`; a `#` inside a value is kept.
// Failures reported by a structure, such as popping an empty stack, are
// written out and are not returned.
func (i *Interpreter) Exec(line string) error {
	fields := strings.Fields(line)
	for idx, f := range fields {
		if strings.HasPrefix(f, "#") {
			fields = fields[:idx]
			break
		}
	}
	if len(fields) == 0 {
		return nil
	}
	if len(fields) < 3 {
		return errors.Errorf("expected `<kind> <name> <op>`, got '%s'", strings.Join(fields, " "))
	}

	kind, name, op, args := Kind(fields[0]), fields[1], fields[2], fields[3:]
	i.log.Debugf("exec %s %s %s %v\n", kind, name, op, args)

	var err error
	switch kind {
	case KindList:
		err = i.execList(name, op, args)
	case KindStack:
		err = i.execStack(name, op, args)
	case KindQueue:
		err = i.execQueue(name, op, args)
	default:
		return errors.Errorf("unknown kind '%s'", kind)
	}

	if collections.IsOutOfRange(err) || collections.IsEmpty(err) {
		i.log.Verbosef("%s %s %s: %s\n", kind, name, op, err.Error())
		fmt.Fprintf(i.w, "error: %s\n", err.Error())
		return nil
	}
	return err
}

func (i *Interpreter) execList(name, op string, args []string) error {
	if op == "new" {
		if err := i.claim(name, KindList); err != nil {
			return err
		}
		i.lists[name] = collections.CreateLinkedList(args...)
		return nil
	}

	ll, err := i.list(name)
	if err != nil {
		return err
	}

	switch op {
	case "insert_front":
		if err := expectArgs(op, args, 1); err != nil {
			return err
		}
		ll.InsertFront(args[0])
	case "insert_back":
		if err := expectArgs(op, args, 1); err != nil {
			return err
		}
		ll.InsertBack(args[0])
	case "insert_at_index":
		if err := expectArgs(op, args, 2); err != nil {
			return err
		}
		index, err := parseInt(op, args[0])
		if err != nil {
			return err
		}
		return ll.InsertAtIndex(index, args[1])
	case "remove_at_index":
		if err := expectArgs(op, args, 1); err != nil {
			return err
		}
		index, err := parseInt(op, args[0])
		if err != nil {
			return err
		}
		return ll.RemoveAtIndex(index)
	case "remove":
		if err := expectArgs(op, args, 1); err != nil {
			return err
		}
		fmt.Fprintln(i.w, ll.Remove(args[0]))
	case "count":
		if err := expectArgs(op, args, 1); err != nil {
			return err
		}
		fmt.Fprintln(i.w, ll.Count(args[0]))
	case "find":
		if err := expectArgs(op, args, 1); err != nil {
			return err
		}
		fmt.Fprintln(i.w, ll.Find(args[0]))
	case "length":
		if err := expectArgs(op, args, 0); err != nil {
			return err
		}
		fmt.Fprintln(i.w, ll.Length())
	case "is_empty":
		if err := expectArgs(op, args, 0); err != nil {
			return err
		}
		fmt.Fprintln(i.w, ll.IsEmpty())
	case "slice":
		if err := expectArgs(op, args, 3); err != nil {
			return err
		}
		start, err := parseInt(op, args[0])
		if err != nil {
			return err
		}
		size, err := parseInt(op, args[1])
		if err != nil {
			return err
		}
		dest := args[2]
		if err := i.claim(dest, KindList); err != nil {
			return err
		}
		s, err := ll.Slice(start, size)
		if err != nil {
			return err
		}
		i.lists[dest] = s
	case "reverse":
		if err := expectArgs(op, args, 0); err != nil {
			return err
		}
		ll.Reverse()
	case "print":
		if err := expectArgs(op, args, 0); err != nil {
			return err
		}
		fmt.Fprintln(i.w, ll.String())
	default:
		return errors.Errorf("unknown %s operation '%s'", KindList, op)
	}

	return nil
}

func (i *Interpreter) execStack(name, op string, args []string) error {
	if err := i.claim(name, KindStack); err != nil {
		return err
	}
	s, ok := i.stacks[name]
	if !ok {
		s = collections.CreateStack[string]()
		i.stacks[name] = s
	}

	switch op {
	case "push":
		if err := expectArgs(op, args, 1); err != nil {
			return err
		}
		s.Push(args[0])
	case "pop", "top":
		if err := expectArgs(op, args, 0); err != nil {
			return err
		}
		var v string
		var err error
		if op == "pop" {
			v, err = s.Pop()
		} else {
			v, err = s.Top()
		}
		if err != nil {
			return err
		}
		fmt.Fprintln(i.w, v)
	case "size":
		if err := expectArgs(op, args, 0); err != nil {
			return err
		}
		fmt.Fprintln(i.w, s.Size())
	case "is_empty":
		if err := expectArgs(op, args, 0); err != nil {
			return err
		}
		fmt.Fprintln(i.w, s.IsEmpty())
	case "print":
		if err := expectArgs(op, args, 0); err != nil {
			return err
		}
		fmt.Fprintln(i.w, s.String())
	default:
		return errors.Errorf("unknown %s operation '%s'", KindStack, op)
	}

	return nil
}

func (i *Interpreter) execQueue(name, op string, args []string) error {
	if err := i.claim(name, KindQueue); err != nil {
		return err
	}
	q, ok := i.queues[name]
	if !ok {
		q = collections.CreateQueue[string]()
		i.queues[name] = q
	}

	switch op {
	case "enqueue":
		if err := expectArgs(op, args, 1); err != nil {
			return err
		}
		q.Enqueue(args[0])
	case "dequeue", "front":
		if err := expectArgs(op, args, 0); err != nil {
			return err
		}
		var v string
		var err error
		if op == "dequeue" {
			v, err = q.Dequeue()
		} else {
			v, err = q.Front()
		}
		if err != nil {
			return err
		}
		fmt.Fprintln(i.w, v)
	case "size":
		if err := expectArgs(op, args, 0); err != nil {
			return err
		}
		fmt.Fprintln(i.w, q.Size())
	case "is_empty":
		if err := expectArgs(op, args, 0); err != nil {
			return err
		}
		fmt.Fprintln(i.w, q.IsEmpty())
	case "print":
		if err := expectArgs(op, args, 0); err != nil {
			return err
		}
		fmt.Fprintln(i.w, q.String())
	default:
		return errors.Errorf("unknown %s operation '%s'", KindQueue, op)
	}

	return nil
}

// claim binds name to kind, or fails if name is bound to another kind.
func (i *Interpreter) claim(name string, kind Kind) error {
	if k, ok := i.kinds[name]; ok && k != kind {
		return errors.Errorf("'%s' is a %s, not a %s", name, k, kind)
	}
	i.kinds[name] = kind
	return nil
}

func (i *Interpreter) list(name string) (*collections.LinkedList[string], error) {
	if err := i.claim(name, KindList); err != nil {
		return nil, err
	}
	ll, ok := i.lists[name]
	if !ok {
		ll = collections.CreateLinkedList[string]()
		i.lists[name] = ll
	}
	return ll, nil
}

func expectArgs(op string, args []string, n int) error {
	if len(args) != n {
		return errors.Errorf("%s takes %d argument(s), got %d", op, n, len(args))
	}
	return nil
}

func parseInt(op, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Wrapf(err, "%s: '%s' is not an integer", op, s)
	}
	return n, nil
}
