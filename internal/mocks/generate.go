package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/onboarding --output domain/onboarding --outpkg onboardingmock --filename repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/preference --output domain/preference --outpkg preferencemock --filename repository_mock.go
