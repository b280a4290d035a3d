// Package record decodes JSON and YAML documents into validator records
// without coercing values: "10" stays a string and 10 stays a number, so the
// engine's type checks see the document as written.
//
//	rec, err := record.FromJSONPath(body, "payload.user")
//	if err != nil {
//	    return err
//	}
//	errs, err := validator.Validate(rec, rules)
package record
