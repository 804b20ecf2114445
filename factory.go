package necs

type factory struct{}

var Factory factory

func (f factory) NewRegistry(opts ...Option) Registry {
	return newRegistry(opts...)
}
