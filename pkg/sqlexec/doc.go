// Package sqlexec implements database.Executor on top of database/sql.
//
// A Template runs statements and scalar queries directly and delegates the SQL
// for metadata lookups to a Catalog, since every engine exposes its catalog
// differently. InformationSchema covers engines with an ANSI-style
// INFORMATION_SCHEMA, such as Cloud Spanner.
//
//	tmpl := sqlexec.New(db, sqlexec.InformationSchema{
//		Placeholder: sqlexec.AtPlaceholder,
//		IndexTypes:  []string{"INDEX"},
//	}, logger)
//
//	rows, err := tmpl.MetaData().Tables(ctx, utils.Ptr(""), utils.Ptr(""), nil, nil)
//	if err != nil {
//		return err
//	}
//	defer func() { _ = rows.Close() }()
//
// Every statement is logged at debug level before it runs.
package sqlexec
