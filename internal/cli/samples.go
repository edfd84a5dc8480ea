package cli

import (
	"sort"

	"github.com/toyz/poet/pkg/poet"
)

// Sample is a built-in generator: it assembles one or more Java source
// files demonstrating a slice of the descriptor API. The CLI applies
// file-level configuration (indent, file comment) before building.
type Sample struct {
	Name        string
	Description string
	Build       func() ([]*poet.JavaFileBuilder, error)
}

// Samples returns the built-in samples sorted by name.
func Samples() []Sample {
	out := make([]Sample, len(builtinSamples))
	copy(out, builtinSamples)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// FindSample looks a sample up by name.
func FindSample(name string) (Sample, bool) {
	for _, s := range builtinSamples {
		if s.Name == name {
			return s, true
		}
	}
	return Sample{}, false
}

var builtinSamples = []Sample{
	{
		Name:        "helloworld",
		Description: "minimal class with a main method",
		Build:       buildHelloWorld,
	},
	{
		Name:        "processor",
		Description: "generic class with fields, constructor, and control flow",
		Build:       buildProcessor,
	},
	{
		Name:        "shapes",
		Description: "sealed interface with record and enum implementations",
		Build:       buildShapes,
	},
}

func buildHelloWorld() ([]*poet.JavaFileBuilder, error) {
	system := poet.NewClassName("java.lang", "System")

	main, err := poet.NewMethodSpecBuilder("main").
		AddModifiers(poet.Public, poet.Static).
		Returns("void").
		AddParameter("String[]", "args").
		AddStatement("$T.out.println($S)", system, "Hello, World!").
		Build()
	if err != nil {
		return nil, err
	}

	helloWorld, err := poet.NewClassBuilder("HelloWorld").
		AddModifiers(poet.Public, poet.Final).
		AddMethod(main).
		Build()
	if err != nil {
		return nil, err
	}

	return []*poet.JavaFileBuilder{
		poet.NewJavaFileBuilder("com.example.helloworld", helloWorld),
	}, nil
}

func buildProcessor() ([]*poet.JavaFileBuilder, error) {
	t := poet.TypeVariable("T")
	r := poet.TypeVariable("R")
	listClass := poet.NewClassName("java.util", "List")
	arrayListClass := poet.NewClassName("java.util", "ArrayList")
	objectsClass := poet.NewClassName("java.util", "Objects")

	nameField, err := poet.NewFieldSpecBuilder(poet.StringType, "name").
		AddModifiers(poet.Private, poet.Final).
		Build()
	if err != nil {
		return nil, err
	}

	countField, err := poet.NewFieldSpecBuilder("int", "processCount").
		AddModifiers(poet.Private).
		Initializer("0").
		Build()
	if err != nil {
		return nil, err
	}

	constructor, err := poet.NewConstructorBuilder().
		AddModifiers(poet.Public).
		AddParameter(poet.StringType, "name").
		AddStatement("this.$N = $T.requireNonNull($N)", "name", objectsClass, "name").
		Build()
	if err != nil {
		return nil, err
	}

	process, err := poet.NewMethodSpecBuilder("process").
		AddModifiers(poet.Public).
		AddTypeVariable(t).
		AddTypeVariable(r).
		Returns(poet.Parameterized(listClass, r)).
		AddParameter(poet.Parameterized(listClass, t), "input").
		AddParameter("java.util.function.Function<T, R>", "transformer").
		AddStatement("$T<$T> result = new $T<>()", listClass, r, arrayListClass).
		BeginControlFlow("for ($T item : input)", t).
		AddStatement("result.add(transformer.apply(item))").
		EndControlFlow().
		AddStatement("processCount++").
		AddStatement("return result").
		Build()
	if err != nil {
		return nil, err
	}

	override, err := poet.MarkerAnnotation(poet.NewClassName("java.lang", "Override"))
	if err != nil {
		return nil, err
	}

	toString, err := poet.NewMethodSpecBuilder("toString").
		AddAnnotation(override).
		AddModifiers(poet.Public).
		Returns(poet.StringType).
		AddStatement("return $S + name + $S + processCount", "DataProcessor{name='", "', processCount=").
		Build()
	if err != nil {
		return nil, err
	}

	processor, err := poet.NewClassBuilder("DataProcessor").
		AddModifiers(poet.Public).
		AddField(nameField).
		AddField(countField).
		AddMethod(constructor).
		AddMethod(process).
		AddMethod(toString).
		Build()
	if err != nil {
		return nil, err
	}

	return []*poet.JavaFileBuilder{
		poet.NewJavaFileBuilder("com.example.processor", processor),
	}, nil
}

func buildShapes() ([]*poet.JavaFileBuilder, error) {
	pkg := "com.example.shapes"
	shape := poet.NewClassName(pkg, "Shape")
	circle := poet.NewClassName(pkg, "Circle")
	rect := poet.NewClassName(pkg, "Rectangle")

	area, err := poet.NewMethodSpecBuilder("area").
		AddModifiers(poet.Public, poet.Abstract).
		Returns("double").
		Build()
	if err != nil {
		return nil, err
	}

	shapeType, err := poet.NewInterfaceBuilder("Shape").
		AddModifiers(poet.Public, poet.Sealed).
		AddPermittedSubclass(circle).
		AddPermittedSubclass(rect).
		AddMethod(area).
		Build()
	if err != nil {
		return nil, err
	}

	circleArea, err := overrideMethod("area", "return Math.PI * radius * radius")
	if err != nil {
		return nil, err
	}
	circleType, err := poet.NewRecordBuilder("Circle").
		AddModifiers(poet.Public).
		AddRecordComponent("double", "radius").
		AddSuperinterface(shape).
		AddMethod(circleArea).
		Build()
	if err != nil {
		return nil, err
	}

	rectArea, err := overrideMethod("area", "return width * height")
	if err != nil {
		return nil, err
	}
	rectType, err := poet.NewRecordBuilder("Rectangle").
		AddModifiers(poet.Public).
		AddRecordComponent("double", "width").
		AddRecordComponent("double", "height").
		AddSuperinterface(shape).
		AddMethod(rectArea).
		Build()
	if err != nil {
		return nil, err
	}

	unitType, err := buildUnitEnum()
	if err != nil {
		return nil, err
	}

	return []*poet.JavaFileBuilder{
		poet.NewJavaFileBuilder(pkg, shapeType),
		poet.NewJavaFileBuilder(pkg, circleType),
		poet.NewJavaFileBuilder(pkg, rectType),
		poet.NewJavaFileBuilder(pkg, unitType),
	}, nil
}

func overrideMethod(name, statement string) (*poet.MethodSpec, error) {
	override, err := poet.MarkerAnnotation(poet.NewClassName("java.lang", "Override"))
	if err != nil {
		return nil, err
	}
	return poet.NewMethodSpecBuilder(name).
		AddAnnotation(override).
		AddModifiers(poet.Public).
		Returns("double").
		AddStatement(statement).
		Build()
}

func buildUnitEnum() (*poet.TypeSpec, error) {
	symbolField, err := poet.NewFieldSpecBuilder(poet.StringType, "symbol").
		AddModifiers(poet.Private, poet.Final).
		Build()
	if err != nil {
		return nil, err
	}

	constructor, err := poet.NewConstructorBuilder().
		AddParameter(poet.StringType, "symbol").
		AddStatement("this.$N = $N", "symbol", "symbol").
		Build()
	if err != nil {
		return nil, err
	}

	symbolGetter, err := poet.NewMethodSpecBuilder("symbol").
		AddModifiers(poet.Public).
		Returns(poet.StringType).
		AddStatement("return symbol").
		Build()
	if err != nil {
		return nil, err
	}

	meters, err := poet.NewAnonymousClassBuilder("$S", "m").Build()
	if err != nil {
		return nil, err
	}
	feet, err := poet.NewAnonymousClassBuilder("$S", "ft").Build()
	if err != nil {
		return nil, err
	}

	return poet.NewEnumBuilder("Unit").
		AddModifiers(poet.Public).
		AddEnumConstantWithBody("METERS", meters).
		AddEnumConstantWithBody("FEET", feet).
		AddField(symbolField).
		AddMethod(constructor).
		AddMethod(symbolGetter).
		Build()
}
