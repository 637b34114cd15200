package algorithms_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/mggg/gerrychain-go/algorithms"
)

func TestDFS_StartNotInView(t *testing.T) {
	sub := chainSubgraph(t, 1)
	_, err := algorithms.DFS(sub, 5, nil)
	if !errors.Is(err, algorithms.ErrDFSStartNotInView) {
		t.Fatalf("expected ErrDFSStartNotInView, got %v", err)
	}
}

func TestDFS_SingleNode(t *testing.T) {
	sub := chainSubgraph(t, 1)
	res, err := algorithms.DFS(sub, 0, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(res.Order, []int{0}) {
		t.Errorf("Order = %v; want [0]", res.Order)
	}
	if d := res.Depth[0]; d != 0 {
		t.Errorf("Depth[0] = %d; want 0", d)
	}
}

func TestDFS_LinearGraph(t *testing.T) {
	sub := chainSubgraph(t, 3)
	res, err := algorithms.DFS(sub, 0, nil)
	if err != nil {
		t.Fatal(err)
	}
	want := []int{0, 1, 2}
	if !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if parent := res.Parent[2]; parent != 1 {
		t.Errorf("Parent[2] = %d; want 1", parent)
	}
}

func TestDFS_AllVisited(t *testing.T) {
	sub := chainSubgraph(t, 5)
	res, err := algorithms.DFS(sub, 2, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Visited) != 5 {
		t.Errorf("visited %d nodes; want 5", len(res.Visited))
	}
}

func TestDFS_EarlyStop(t *testing.T) {
	sub := chainSubgraph(t, 3)
	opts := &algorithms.DFSOptions{
		OnVisit: func(v, depth int) error {
			if v == 1 {
				return errors.New("halt at 1")
			}
			return nil
		},
	}
	res, err := algorithms.DFS(sub, 0, opts)
	if err == nil {
		t.Fatal("expected an error")
	}
	if !reflect.DeepEqual(res.Order, []int{0, 1}) {
		t.Errorf("Order = %v; want [0 1]", res.Order)
	}
}

func TestDFS_Cancellation(t *testing.T) {
	sub := chainSubgraph(t, 200)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := algorithms.DFS(sub, 0, &algorithms.DFSOptions{Ctx: ctx})
	if err == nil || !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
