// Package sorter keeps the sort state of a table and applies it to rows.
//
// # Overview
//
// A [Sorter] tracks at most one active field and its [Direction]. Clicking a
// column header calls [Sorter.Select]; rendering the table calls
// [Sorter.Sort]. Each field has an ordering [Policy] that decides which
// directions it may be sorted in, which one it starts in, and where null
// values go. A field without a policy is unsortable and clicks on it are
// ignored.
//
// # Fields
//
// The simplest way to describe a table is an enumeration of its columns that
// implements [Field]:
//
//	type column int
//
//	const (
//	    colName column = iota
//	    colLeftOffice
//	)
//
//	func (c column) CompareBy(a, b Minister) optional.Value[compare.Ordering] {
//	    switch c {
//	    case colName:
//	        return compare.Ordered(a.Name, b.Name)
//	    default:
//	        return compare.Optionals(a.LeftOffice, b.LeftOffice, compare.Ordered[int])
//	    }
//	}
//
//	func (c column) SortBy() optional.Value[sorter.Policy] {
//	    if c == colLeftOffice {
//	        return sorter.Sortable(sorter.Decreasing().WithNulls(sorter.NullsFirst))
//	    }
//
//	    return sorter.Sortable(sorter.IncreasingOrDecreasing())
//	}
//
//	s := sorter.ForFields[column, Minister]()
//
// When the comparator and policies live elsewhere (for example policies
// loaded from YAML with [LoadPolicies]), use [New] directly.
//
// # Nulls
//
// A comparator returns None for a pair it cannot order. A value that cannot
// be ordered against itself is null. Nulls are placed first or last as the
// policy says, in both directions, and keep their input order among
// themselves.
//
// # Selection
//
//   - Selecting an inactive field activates it in its policy's default
//     direction.
//   - Selecting the active field flips its direction when the policy allows
//     both, and otherwise leaves it alone.
//   - Selecting an unsortable field does nothing.
//
// Selection never goes back to idle. Use [Sorter.Reset] for that.
package sorter
