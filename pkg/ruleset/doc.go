// Package ruleset loads validator rule sets from JSON and YAML documents.
//
// A document maps field names to rule definitions:
//
//	age:
//	  type: integer
//	  min: 18
//	email:
//	  type: string
//	  pattern: email
//	  max: 255
//	avatar:
//	  type: callback
//	  callback: image_url
//	  nullable: true
//
// Definitions are checked structurally before conversion: the type and
// pattern must be registered with the validator package and callback names
// must be identifiers. Failures wrap ErrInvalidDefinition and name the field.
//
// Callbacks cannot be serialised, so documents reference them by name and a
// Registry supplies the functions:
//
//	reg := ruleset.NewRegistry()
//	reg.MustRegister("image_url", checkImageURL)
//
//	rules, err := ruleset.LoadFile(ctx, "rules.yaml", reg)
//	if err != nil {
//	    return err
//	}
//	errs, err := validator.Validate(record, rules)
package ruleset
