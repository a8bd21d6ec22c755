// Package ruleset loads declarative validation rule lists from YAML and
// compiles them against a field set into executable validate.Rule values.
//
// A rule set keeps form validation out of handler code:
//
//	rules:
//	  - {field: email, rule: required}
//	  - {field: email, rule: email}
//	  - {field: age, rule: range, min: 18, max: 99, message: "adults only"}
//
//	rs, err := ruleset.ParseFile("signup.yaml")
//	...
//	err = rs.Run(validate.NewSession(nil), fields)
//
// Rules execute in declaration order with Batch semantics: every rule runs,
// failures accumulate, and Run returns the aggregated failure at the end.
package ruleset
