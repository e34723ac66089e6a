// Package dfs implements depth-first path search on a core.Graph.
//
// What:
//
//   - FindPath: the first simple path from start to end found by trying
//     neighbours in adjacency order. Not guaranteed shortest.
//   - FindAllPaths: every simple path from start to end, in depth-first
//     discovery order.
//   - FindShortestPath: the simple path with the fewest vertices; ties go to
//     the path discovered first.
//
// Why:
//   - Small, deterministic path queries over hand-built adjacency mappings
//     (routing tables, dependency sketches, course prerequisites, puzzles).
//   - Reproducible results: the traversal order is the stored adjacency order.
//
// Options:
//
//   - WithContext(ctx)   allows cancellation via context.Context.
//   - WithMaxDepth(n)    do not extend paths beyond n arcs.
//   - WithMaxPaths(n)    FindAllPaths stops after n paths (ErrPathBudget).
//   - WithStats(&opts)   receive diagnostics (Expanded vertex count).
//
// Complexity:
//
//   - All three searches enumerate simple paths and are exponential in the
//     worst case. They always terminate on finite graphs because a vertex is
//     never repeated within a path. Use the options above to bound latency.
//   - Memory: O(L) per recursion frame, L = current path length.
//
// Errors:
//
//   - ErrGraphNil      graph pointer is nil
//   - ErrPathBudget    FindAllPaths hit WithMaxPaths
//   - context.Canceled / context.DeadlineExceeded
//
// Functions:
//
//   - FindPath(g *core.Graph[V], start, end V, opts ...Option) ([]V, error)
//   - FindAllPaths(g *core.Graph[V], start, end V, opts ...Option) ([][]V, error)
//   - FindShortestPath(g *core.Graph[V], start, end V, opts ...Option) ([]V, error)
package dfs
