// Package dsl provides a builder API for goswag schema descriptors.
//
// Overview
//   - Field builders: String()/Integer()/DateTime()/... create one field
//     descriptor; chain Required()/Default()/OneOf()/Description() and
//     friends, then Build() for a *goswag.Field.
//   - Composites: List(elem) for arrays, Nested(s)/NestedMany(s) for
//     embedded schemas, NestedRef(ref) for a verbatim reference target.
//   - Object builder: Object() collects named fields into a *goswag.Schema;
//     chain Field/Required/Only/Exclude then Build()/MustBuild().
//
// Entry points
//   - Object(): create an object builder; chain Field(name, fb) steps, then
//     MustBuild()/Build.
//   - String(), Integer(), Number(), Float(), Decimal(), Bool(), UUID(),
//     DateTime(), Date(), Time(), Email(), URL(), Bytes(), Raw(): one field
//     builder per field kind.
//   - List(elem), Nested(s), NestedMany(s), NestedRef(ref): composite field
//     builders.
//
// Build errors are reported as goswag.Issues: declaring the same field name
// twice, or requiring a name that was never declared, surfaces at Build
// rather than silently producing a hole in the descriptor.
//
// Example (quickstart)
//
//	pet := dsl.Object().
//	    Field("id",   dsl.Integer().Format("int64").DumpOnly()).
//	    Field("name", dsl.String().Description("the name")).Required().
//	    Field("tags", dsl.NestedMany(tag)).
//	    Title("a Pet").
//	    MustBuild()
//
//	reg := goswag.NewRegistry()
//	reg.Register("Pet", pet)
//	js, _ := swagger.SchemaObject(pet, swagger.Options{Registry: reg})
package dsl
