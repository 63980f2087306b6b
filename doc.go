// Package thirteenf reads the information table of a Form 13F filing, the
// quarterly report of an institutional investment manager's holdings, and
// turns it into a firm portfolio that can be queried and reported on.
//
// The pipeline has three steps:
//   - Decoding: DecodeFiling turns the XML document into a generic tree of
//     maps, lists and strings.
//   - Compiling: Compile walks the infoTable records of the tree, normalizes
//     each of them into a Holding with NormalizeHolding, and sorts them by
//     market value. Every invalid record is reported, none is skipped.
//   - Aggregating: a Firm owns the compiled holdings and computes the total
//     market value (AUM), position counts, the top holding and the percent of
//     portfolio of each holding.
//
// Market values are reported in thousands of dollars in the information
// table and stored in whole dollars in a Holding.
//
// This package is the foundation of the `f13` command-line tool.
package thirteenf
