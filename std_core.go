// std_core.go — the bootstrap script.
//
// Everything the language provides beyond the host function table is
// defined here, in the language itself, and evaluated into the global
// environment by NewRuntime. Keeping the script embedded means a binary
// never ships with a half-initialized runtime.
package rulsp

const coreScript = `
; rulsp core library. Evaluated against the host function table at
; startup; a failure here is fatal to the process.

(def first (fn* (xs) (nth xs 0)))
(def second (fn* (xs) (nth xs 1)))

(def inc (fn* (n) (+ n 1)))
(def dec (fn* (n) (- n 1)))

(def empty? (fn* (xs) (= (count xs) 0)))
(def last (fn* (xs) (nth xs (dec (count xs)))))
`
