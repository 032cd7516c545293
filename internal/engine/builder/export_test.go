// export_test.go exports private functions for white-box testing.
package builder

// BuildReference exports the pairwise construction used as the test oracle.
var BuildReference = buildReference
