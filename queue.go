package tetris

import (
	"fmt"
	"math/rand"
)

type TetrominoGetter interface {
	Next() Tetromino
}

// RandomGetter draws every tetromino independently and uniformly. The
// sequence is fully determined by the seed and can be restarted with Reset.
type RandomGetter struct {
	seed       int64
	randomizer *rand.Rand
}

func NewRandomGetter(seed int64) *RandomGetter {
	return &RandomGetter{
		seed:       seed,
		randomizer: rand.New(rand.NewSource(seed)),
	}
}

func (r *RandomGetter) Next() Tetromino {
	return Tetrominoes[r.randomizer.Intn(len(Tetrominoes))]
}

func (r *RandomGetter) Reset() {
	r.randomizer = rand.New(rand.NewSource(r.seed))
}

// QueueGetter hands out a fixed list of tetrominoes in order, wrapping
// around at the end.
type QueueGetter struct {
	queue []Tetromino
	pos   int
}

func NewQueueGetter(t ...Tetromino) *QueueGetter {
	return &QueueGetter{queue: append([]Tetromino(nil), t...)}
}

func (q *QueueGetter) Next() Tetromino {
	if len(q.queue) == 0 {
		return TetrominoO
	}
	t := q.queue[q.pos]
	q.pos = (q.pos + 1) % len(q.queue)
	return t
}

func (q *QueueGetter) Push(t ...Tetromino) {
	q.queue = append(q.queue, t...)
}

func (q *QueueGetter) Reset() {
	q.pos = 0
}

// NextQueue is the look-ahead buffer of upcoming tetrominoes. Once filled it
// always holds exactly size entries.
type NextQueue struct {
	getter TetrominoGetter
	size   int
	buf    []Tetromino
}

func NewNextQueue(getter TetrominoGetter, size int) *NextQueue {
	if size < 1 {
		panic(fmt.Errorf("next queue size must be at least 1, got %d", size))
	}
	q := &NextQueue{getter: getter, size: size, buf: make([]Tetromino, 0, size)}
	q.Reset()
	return q
}

// Reset discards the buffer and refills it with fresh draws.
func (q *NextQueue) Reset() {
	q.buf = q.buf[:0]
	for len(q.buf) < q.size {
		q.buf = append(q.buf, q.getter.Next())
	}
}

func (q *NextQueue) Pop() Tetromino {
	t := q.buf[0]
	copy(q.buf, q.buf[1:])
	q.buf[len(q.buf)-1] = q.getter.Next()
	return t
}

func (q *NextQueue) Peek() []Tetromino {
	return append([]Tetromino(nil), q.buf...)
}

func (q *NextQueue) Len() int {
	return len(q.buf)
}
