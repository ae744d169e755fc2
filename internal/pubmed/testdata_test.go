// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pubmed

const sampleESearchXML = `<?xml version="1.0" encoding="UTF-8" ?>
<!DOCTYPE eSearchResult PUBLIC "-//NLM//DTD esearch 20060628//EN" "https://eutils.ncbi.nlm.nih.gov/eutils/dtd/20060628/esearch.dtd">
<eSearchResult>
  <Count>1234</Count>
  <RetMax>2</RetMax>
  <RetStart>0</RetStart>
  <IdList>
    <Id>1001</Id>
    <Id>1002</Id>
  </IdList>
  <TranslationSet/>
  <QueryTranslation>"covid 19 vaccines"[MeSH Terms]</QueryTranslation>
</eSearchResult>`

const emptyESearchXML = `<?xml version="1.0" encoding="UTF-8" ?>
<eSearchResult>
  <Count>0</Count>
  <RetMax>0</RetMax>
  <RetStart>0</RetStart>
  <IdList/>
  <ErrorList><PhraseNotFound>zzzxqq</PhraseNotFound></ErrorList>
</eSearchResult>`

const errorESearchXML = `<?xml version="1.0" encoding="UTF-8" ?>
<eSearchResult><ERROR>Invalid query</ERROR></eSearchResult>`

// sampleEFetchXML holds two well-formed articles. 1001 has a DOI but no
// email; 1002 carries an inline email in its second affiliation.
const sampleEFetchXML = `<?xml version="1.0" ?>
<!DOCTYPE PubmedArticleSet PUBLIC "-//NLM//DTD PubMedArticle, 1st January 2024//EN" "https://dtd.nlm.nih.gov/ncbi/pubmed/out/pubmed_240101.dtd">
<PubmedArticleSet>
<PubmedArticle>
  <MedlineCitation Status="MEDLINE" Owner="NLM">
    <PMID Version="1">1001</PMID>
    <Article PubModel="Print-Electronic">
      <Journal>
        <JournalIssue CitedMedium="Internet">
          <Volume>12</Volume>
          <PubDate><Year>2021</Year><Month>Mar</Month><Day>5</Day></PubDate>
        </JournalIssue>
        <Title>Vaccine</Title>
      </Journal>
      <ArticleTitle>Efficacy of <i>mRNA</i> COVID-19 vaccines &amp; boosters.</ArticleTitle>
      <ELocationID EIdType="pii" ValidYN="Y">S0264-410X(21)00001-1</ELocationID>
      <ELocationID EIdType="doi" ValidYN="Y">10.1016/j.vaccine.2021.01.001</ELocationID>
      <AuthorList CompleteYN="Y">
        <Author ValidYN="Y">
          <LastName>Smith</LastName>
          <ForeName>Jane</ForeName>
          <Initials>J</Initials>
          <AffiliationInfo><Affiliation>Department of Immunology, Example University, Boston, MA, USA.</Affiliation></AffiliationInfo>
        </Author>
        <Author ValidYN="Y">
          <LastName>Doe</LastName>
          <ForeName>John</ForeName>
          <AffiliationInfo><Affiliation>Department of Immunology, Example University, Boston, MA, USA.</Affiliation></AffiliationInfo>
        </Author>
        <Author ValidYN="Y">
          <CollectiveName>COVID-19 Study Group</CollectiveName>
        </Author>
      </AuthorList>
    </Article>
  </MedlineCitation>
  <PubmedData>
    <ArticleIdList>
      <ArticleId IdType="pubmed">1001</ArticleId>
      <ArticleId IdType="doi">10.1016/j.vaccine.2021.01.001</ArticleId>
    </ArticleIdList>
    <ReferenceList>
      <Reference>
        <Citation>Another paper.</Citation>
        <ArticleIdList><ArticleId IdType="doi">10.9999/not-this-one</ArticleId></ArticleIdList>
      </Reference>
    </ReferenceList>
  </PubmedData>
</PubmedArticle>
<PubmedArticle>
  <MedlineCitation Status="PubMed-not-MEDLINE" Owner="NLM">
    <PMID Version="1">1002</PMID>
    <Article PubModel="Electronic">
      <Journal>
        <JournalIssue>
          <PubDate><MedlineDate>2020 Dec-2021 Jan</MedlineDate></PubDate>
        </JournalIssue>
      </Journal>
      <ArticleTitle>Vaccine hesitancy in rural clinics.</ArticleTitle>
      <AuthorList>
        <Author>
          <LastName>Lee</LastName>
          <ForeName>Min</ForeName>
          <AffiliationInfo><Affiliation>Pfizer Inc., New York, NY, USA.</Affiliation></AffiliationInfo>
          <AffiliationInfo><Affiliation>Electronic address: min.lee@pfizer.com.</Affiliation></AffiliationInfo>
        </Author>
      </AuthorList>
    </Article>
  </MedlineCitation>
  <PubmedData>
    <ArticleIdList><ArticleId IdType="pubmed">1002</ArticleId></ArticleIdList>
  </PubmedData>
</PubmedArticle>
</PubmedArticleSet>`
