// Package minion turns a "do work repeatedly" loop into a cancellable
// background service loop.
//
// A typical accept loop could look like:
//
//     type Service struct {
//         listener net.Listener
//     }
//
//     func (s *Service) serve() error {
//         for {
//             conn, err := s.listener.Accept()
//             if err != nil {
//                 return err
//             }
//             conn.Write([]byte("hello!"))
//             conn.Close()
//         }
//     }
//
// This is simple code, but there is no way to ask the loop to stop: the
// goroutine running serve is stuck until Accept fails. Using minion, the
// loop body becomes a single step:
//
//     func (s *Service) ForEach() (minion.LoopState, error) {
//         conn, err := s.listener.Accept()
//         if err != nil {
//             return minion.Break, err
//         }
//         conn.Write([]byte("hello!"))
//         conn.Close()
//         return minion.Continue, nil
//     }
//
// and the caller decides how to drive it. Run executes the loop on the
// current goroutine until the step breaks or fails. Spawn executes it on
// a new goroutine and returns a Handle:
//
//     h := minion.Spawn(s)
//
//     // hand a canceller to whoever decides when to stop
//     exit := h.Canceller()
//     go func() {
//         <-time.After(time.Second)
//         exit.Cancel()
//     }()
//
//     // block until the loop exits or errors
//     if err := h.Wait(); err != nil {
//         log.Fatal(err)
//     }
//
// Out of the box, this provides you with:
//
//     • Run, a synchronous run-to-completion driver
//     • Spawn, running the same loop on its own goroutine
//     • Cancel and freely copyable Canceller values to request a stop
//     • Wait, joining the loop and returning its terminal error
//     • Panic propagation from the loop goroutine to the waiter
//     • Logging by providing your logger
//
// Cancellation is cooperative: it is observed between steps, never
// during one. After Cancel, at most one more step runs before the loop
// returns. A cancelled loop is not an error; Wait returns nil exactly as
// if the step had returned Break.
package minion
