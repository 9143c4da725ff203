package gen

import (
	"github.com/uzzu/kotlin-dsl/internal/accessor"
	"github.com/uzzu/kotlin-dsl/internal/jvm"
	"github.com/uzzu/kotlin-dsl/internal/kmetadata"
	"github.com/uzzu/kotlin-dsl/internal/schema"
	"github.com/uzzu/kotlin-dsl/internal/support"
)

// Types shared by every configuration accessor.
var (
	configurationType        = classOf(support.Configuration)
	configurationContainer   = classOf(support.NamedDomainObjectContainer, configurationType)
	configurationProvider    = classOf(support.NamedDomainObjectProvider, configurationType)
	dependencyHandler        = classOf(support.DependencyHandler)
	constraintHandler        = classOf(support.DependencyConstraintHandler)
	dependencyType           = classOf(support.Dependency)
	externalModuleDependency = classOf(support.ExternalModuleDependency)
	dependencyConstraint     = classOf(support.DependencyConstraint)
	stringType               = schema.MustParseType("java.lang.String")
	nullableString           = schema.MustParseType("java.lang.String?")
)

// Configuration emits the container getter and the dependency and
// constraint helpers of one configuration. The JVM class carries eight
// methods; metadata describes one property and six functions, the
// synthetic defaults dispatcher being JVM-only.
func (e *emitter) Configuration(a accessor.ForConfiguration) (*emission, error) {
	refs, err := e.resolve(
		support.SymbolNamedConfiguration,
		support.SymbolAddDependency,
		support.SymbolAddDependencyTo,
		support.SymbolActionExecute,
		support.SymbolAddConstraint,
		support.SymbolAddConfiguredConstraint,
	)
	if err != nil {
		return nil, err
	}

	c := configurationEmitter{
		name:                a.Config.Original,
		facade:              e.facade(a),
		named:               refs[0],
		add:                 refs[1],
		addDependencyTo:     refs[2],
		execute:             refs[3],
		addConstraint:       refs[4],
		addConfiguredConstr: refs[5],
	}

	steps := []func() error{
		c.getter,
		c.addNotation,
		c.addConfiguredNotation,
		c.addModule,
		c.addModuleDefaults,
		c.addConfiguredDependency,
		c.addConstraintNotation,
		c.addConfiguredConstraintNotation,
	}

	for _, step := range steps {
		if err := step(); err != nil {
			return nil, err
		}
	}

	data := configurationData{Name: c.name, Identifier: a.Config.KotlinIdentifier()}
	if err := c.facade.declare(tmplConfiguration, data); err != nil {
		return nil, err
	}

	return e.finish(c.facade)
}

type configurationEmitter struct {
	name   string
	facade *facade

	named               support.MethodRef
	add                 support.MethodRef
	addDependencyTo     support.MethodRef
	execute             support.MethodRef
	addConstraint       support.MethodRef
	addConfiguredConstr support.MethodRef
}

// getter: val NamedDomainObjectContainer<Configuration>.name: NamedDomainObjectProvider<Configuration>
func (c *configurationEmitter) getter() error {
	getter := kmetadata.JvmMethodSignature{
		Name:       accessor.GetterNameFor(c.name),
		Descriptor: jvm.MethodDescriptor(descriptorOf(configurationProvider), descriptorOf(configurationContainer)),
	}

	return c.facade.property(
		extensionProperty(c.name, configurationContainer, configurationProvider, getter),
		genericSignature(configurationProvider, configurationContainer),
		func(code *jvm.Code) {
			code.ALoad(0)
			code.LdcString(c.name)
			c.named.Invoke(code)
			code.AReturn()
		},
	)
}

// addNotation: fun DependencyHandler.name(dependencyNotation: Any): Dependency?
func (c *configurationEmitter) addNotation() error {
	descriptor := jvm.MethodDescriptor(descriptorOf(dependencyType), descriptorOf(dependencyHandler), jvm.ObjectDesc)

	fn := extensionFunction(c.name, dependencyHandler, kotlinTypeOf(dependencyType).AsNullable(), descriptor,
		param("dependencyNotation", anyType))

	return c.facade.function(fn, "", func(code *jvm.Code) {
		code.ALoad(0)
		code.LdcString(c.name)
		code.ALoad(1)
		c.add.Invoke(code)
		code.AReturn()
	})
}

// addConfiguredNotation: fun DependencyHandler.name(dependencyNotation: String,
// dependencyConfiguration: Action<ExternalModuleDependency>): ExternalModuleDependency
func (c *configurationEmitter) addConfiguredNotation() error {
	action := classOf(support.Action, externalModuleDependency)
	descriptor := jvm.MethodDescriptor(descriptorOf(externalModuleDependency),
		descriptorOf(dependencyHandler), jvm.StringDesc, descriptorOf(action))

	fn := extensionFunction(c.name, dependencyHandler, kotlinTypeOf(externalModuleDependency), descriptor,
		param("dependencyNotation", stringType),
		param("dependencyConfiguration", action))

	return c.facade.function(fn, genericSignature(externalModuleDependency, dependencyHandler, stringType, action),
		func(code *jvm.Code) {
			code.ALoad(0)
			code.LdcString(c.name)
			code.ALoad(1)
			code.ALoad(2)
			c.addDependencyTo.Invoke(code)
			code.CheckCast(support.ExternalModuleDependency)
			code.AReturn()
		})
}

// moduleParams are the parameters of the group/name/version overload.
func moduleParams() []kmetadata.ValueParameter {
	return []kmetadata.ValueParameter{
		param("group", stringType),
		param("name", stringType),
		optionalParam("version", nullableString),
		optionalParam("configuration", nullableString),
		optionalParam("classifier", nullableString),
		optionalParam("ext", nullableString),
	}
}

func moduleDescriptor(extra ...string) string {
	params := []string{descriptorOf(dependencyHandler)}
	for range moduleParams() {
		params = append(params, jvm.StringDesc)
	}

	params = append(params, extra...)

	return jvm.MethodDescriptor(descriptorOf(externalModuleDependency), params...)
}

// stubBody is the body of declarations kept for resolution only.
func stubBody(code *jvm.Code) {
	code.AConstNull()
	code.AReturn()
}

// addModule: fun DependencyHandler.name(group: String, name: String, version: String? = null,
// configuration: String? = null, classifier: String? = null, ext: String? = null): ExternalModuleDependency
func (c *configurationEmitter) addModule() error {
	fn := extensionFunction(c.name, dependencyHandler, kotlinTypeOf(externalModuleDependency), moduleDescriptor(),
		moduleParams()...)

	return c.facade.function(fn, "", stubBody)
}

// addModuleDefaults is the synthetic name$default(..., mask: Int, marker: Any?) sibling.
func (c *configurationEmitter) addModuleDefaults() error {
	return c.facade.method(jvm.AccPublic|jvm.AccStatic|jvm.AccSynthetic, c.name+"$default",
		moduleDescriptor(jvm.IntDescriptor, jvm.ObjectDesc), "", stubBody)
}

// addConfiguredDependency: fun <T : Dependency> DependencyHandler.name(dependency: T, action: Action<T>): T
//
// The action runs on the argument before it is added, and the argument itself is returned.
func (c *configurationEmitter) addConfiguredDependency() error {
	const typeParameter = 0

	t := kmetadata.TypeParameterType(typeParameter)
	descriptor := jvm.MethodDescriptor(descriptorOf(dependencyType),
		descriptorOf(dependencyHandler), descriptorOf(dependencyType), jvm.ObjectDescriptor(support.Action))

	fn := extensionFunction(c.name, dependencyHandler, t, descriptor,
		kmetadata.ValueParameter{Name: "dependency", Type: t},
		kmetadata.ValueParameter{Name: "action", Type: kmetadata.ClassType(support.Action, t)},
	)
	fn.TypeParameters = []kmetadata.TypeParameter{{
		ID:          typeParameter,
		Name:        "T",
		Variance:    kmetadata.VarianceInv,
		UpperBounds: []kmetadata.Type{kotlinTypeOf(dependencyType)},
	}}

	// Dependency is an interface, hence the empty class bound before "::".
	signature := "<T::" + signatureOf(dependencyType) + ">(" +
		signatureOf(dependencyHandler) + "TT;" + "L" + support.Action + "<TT;>;)TT;"

	return c.facade.function(fn, signature, func(code *jvm.Code) {
		code.ALoad(2)
		code.ALoad(1)
		c.execute.Invoke(code)
		code.ALoad(0)
		code.LdcString(c.name)
		code.ALoad(1)
		c.add.Invoke(code)
		code.Pop()
		code.ALoad(1)
		code.AReturn()
	})
}

// addConstraintNotation: fun DependencyConstraintHandler.name(constraintNotation: Any): DependencyConstraint?
func (c *configurationEmitter) addConstraintNotation() error {
	descriptor := jvm.MethodDescriptor(descriptorOf(dependencyConstraint), descriptorOf(constraintHandler), jvm.ObjectDesc)

	fn := extensionFunction(c.name, constraintHandler, kotlinTypeOf(dependencyConstraint).AsNullable(), descriptor,
		param("constraintNotation", anyType))

	return c.facade.function(fn, "", func(code *jvm.Code) {
		code.ALoad(0)
		code.LdcString(c.name)
		code.ALoad(1)
		c.addConstraint.Invoke(code)
		code.AReturn()
	})
}

// addConfiguredConstraintNotation: fun DependencyConstraintHandler.name(constraintNotation: Any,
// block: Action<DependencyConstraint>): DependencyConstraint
func (c *configurationEmitter) addConfiguredConstraintNotation() error {
	action := classOf(support.Action, dependencyConstraint)
	descriptor := jvm.MethodDescriptor(descriptorOf(dependencyConstraint),
		descriptorOf(constraintHandler), jvm.ObjectDesc, descriptorOf(action))

	fn := extensionFunction(c.name, constraintHandler, kotlinTypeOf(dependencyConstraint), descriptor,
		param("constraintNotation", anyType),
		param("block", action))

	return c.facade.function(fn, genericSignature(dependencyConstraint, constraintHandler, anyType, action),
		func(code *jvm.Code) {
			code.ALoad(0)
			code.LdcString(c.name)
			code.ALoad(1)
			code.ALoad(2)
			c.addConfiguredConstr.Invoke(code)
			code.AReturn()
		})
}
