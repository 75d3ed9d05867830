package forth

// @generated from forth_test.go

//go:generate go run scripts/gen_forth_expects.go -- forth_test.go forth_expects_test.go

func withForthOptions(opts ...Option) func(forthTestCase) forthTestCase {
	return func(ft forthTestCase) forthTestCase {
		return ft.withOptions(opts...)
	}
}

func withForthStack(values ...int32) func(forthTestCase) forthTestCase {
	return func(ft forthTestCase) forthTestCase {
		return ft.withStack(values...)
	}
}

func withForthInput(lines ...string) func(forthTestCase) forthTestCase {
	return func(ft forthTestCase) forthTestCase {
		return ft.withInput(lines...)
	}
}

func expectForthError(err error) func(forthTestCase) forthTestCase {
	return func(ft forthTestCase) forthTestCase {
		return ft.expectError(err)
	}
}

func expectForthStack(values ...int32) func(forthTestCase) forthTestCase {
	return func(ft forthTestCase) forthTestCase {
		return ft.expectStack(values...)
	}
}

func expectForthWords(names ...string) func(forthTestCase) forthTestCase {
	return func(ft forthTestCase) forthTestCase {
		return ft.expectWords(names...)
	}
}

func expectForthBody(name string, ops ...string) func(forthTestCase) forthTestCase {
	return func(ft forthTestCase) forthTestCase {
		return ft.expectBody(name, ops...)
	}
}

func expectForthDump(dump string) func(forthTestCase) forthTestCase {
	return func(ft forthTestCase) forthTestCase {
		return ft.expectDump(dump)
	}
}
