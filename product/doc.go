// Package product constructs the synchronous parallel composition of two
// automata over the union of their alphabets.
//
// What
//
//   - States are Q_A × Q_B, encoded as a*|Q_B|+b, used consistently for
//     both the initial state and final-state membership — the same
//     encoding everywhere, never a second formula reserved for finals.
//   - The alphabet is Σ_A ∪ Σ_B by name, ordered: all of Σ_A in its
//     original order, then any symbol of Σ_B not already present.
//   - For each union symbol σ, a side that does not define σ stutters —
//     its component of the product state is left unchanged — so a
//     private event of one side never blocks the other.
//
// Why
//
//	The operator and machine share some but not all events; the stutter
//	rule is what lets them compose without either side needing to know
//	the other's full alphabet.
package product
