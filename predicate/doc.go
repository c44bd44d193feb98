/*
Package predicate defines the predicate tree consumed by QueryStore's
descriptor factory, and the Parser contract that produces it.

A Tree is the structured form of a declarative method name such as
FindByCountryAndAgeGreaterThan: an ordered chain of clauses, each pairing
a property with an operator, plus an optional sort order. Trees are
immutable values; a single tree is safely shared by the count and fetch
phases of a paged dispatch.

The grammar that turns a method name into a Tree is deliberately outside
this library. Callers supply any Parser implementation (or a ParserFunc);
tests typically hand-build trees with NewTree.
*/
package predicate
