// Package server exposes the board and its login flow over HTTP.
//
// Routes:
//
//	POST /api/auth/login     password login, returns a session token
//	GET  /api/board          read the board (open)
//	POST /api/board          replace the board (gated)
//	POST /api/board/add      add a task (gated)
//	POST /api/board/move     move a task (gated)
//	POST /api/board/update   update a task (gated)
//	GET  /metrics            Prometheus exposition, when configured
//	GET  /healthz            liveness
//
// Gated routes go through middleware.Guard. Board errors answer
// {"success":false,"error":"..."}; login errors answer {"error":"..."}.
package server
